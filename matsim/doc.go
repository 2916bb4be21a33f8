// Package matsim reads MATSim network and plans/trips XML files into flat
// intermediate records. Records with missing required attributes are
// dropped here with a warning; everything else is passed through as
// strings for the converter to interpret.
package matsim
