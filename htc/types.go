package htc

// DependencyInfo is a reference descriptor embedded in dependent actors.
// The runtime resolves it by id/resourceId at deployment time.
type DependencyInfo struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	ClassType  string `json:"classType"`
	ActorType  string `json:"actorType"`
}

// GPSDependency returns the descriptor of the single GPS actor shared by
// every car.
func GPSDependency() *DependencyInfo {
	return &DependencyInfo{
		ID:         GPSActorID,
		ResourceID: GPSResourceID,
		ClassType:  GPSClassType,
		ActorType:  ActorTypePool,
	}
}

// NodeContent is the state payload of a node actor. Latitude and longitude
// carry the raw MATSim x/y strings unparsed.
type NodeContent struct {
	StartTick             int    `json:"startTick"`
	Latitude              string `json:"latitude"`
	Longitude             string `json:"longitude"`
	ScheduleOnTimeManager bool   `json:"scheduleOnTimeManager"`
}

// NodeData wraps node content with its runtime state type.
type NodeData struct {
	DataType string      `json:"dataType"`
	Content  NodeContent `json:"content"`
}

// NodeActor is one simulated intersection. ResourceID is bookkeeping for
// the shard writer and never appears on the wire.
type NodeActor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	TypeActor    string   `json:"typeActor"`
	Data         NodeData `json:"data"`
	Dependencies struct{} `json:"dependencies"`
	ResourceID   string   `json:"-"`
}

// LinkContent is the state payload of a link actor. from_node/to_node hold
// node actor ids, or MISSING_NODE_<id> placeholders when unresolved.
type LinkContent struct {
	StartTick             int      `json:"startTick"`
	FromNode              string   `json:"from_node"`
	ToNode                string   `json:"to_node"`
	CapPeriod             *string  `json:"capperiod,omitempty"`
	EffectiveCellSize     *float64 `json:"effectivecellsize,omitempty"`
	EffectiveLaneWidth    *float64 `json:"effectivelanewidth,omitempty"`
	Length                float64  `json:"length"`
	Lanes                 int      `json:"lanes"`
	FreeSpeed             float64  `json:"freeSpeed"`
	Capacity              float64  `json:"capacity"`
	PermLanes             float64  `json:"permlanes"`
	Modes                 []string `json:"modes"`
	LinkType              *string  `json:"linkType,omitempty"`
	ScheduleOnTimeManager bool     `json:"scheduleOnTimeManager"`
}

// LinkData wraps link content with its runtime state type.
type LinkData struct {
	DataType string      `json:"dataType"`
	Content  LinkContent `json:"content"`
}

// LinkDependencies references the resolved endpoint nodes. An entry is
// omitted entirely when the node could not be resolved.
type LinkDependencies struct {
	FromNode *DependencyInfo `json:"from_node,omitempty"`
	ToNode   *DependencyInfo `json:"to_node,omitempty"`
}

// LinkActor is one simulated road segment.
type LinkActor struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	TypeActor    string           `json:"typeActor"`
	Data         LinkData         `json:"data"`
	Dependencies LinkDependencies `json:"dependencies"`
	ResourceID   string           `json:"-"`
}

// CarContent is the state payload of a car actor.
type CarContent struct {
	StartTick             int    `json:"startTick"`
	Origin                string `json:"origin"`
	Destination           string `json:"destination"`
	LinkOrigin            string `json:"linkOrigin"`
	GPSID                 string `json:"gpsId"`
	ScheduleOnTimeManager bool   `json:"scheduleOnTimeManager"`
}

// CarData wraps car content with its runtime state type.
type CarData struct {
	DataType string     `json:"dataType"`
	Content  CarContent `json:"content"`
}

// CarDependencies references the origin/destination nodes plus the shared
// GPS actor. Node entries are omitted when unresolved; gps is always set.
type CarDependencies struct {
	FromNode *DependencyInfo `json:"from_node,omitempty"`
	ToNode   *DependencyInfo `json:"to_node,omitempty"`
	GPS      *DependencyInfo `json:"gps"`
}

// CarActor is one simulated vehicle trip.
type CarActor struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TypeActor    string          `json:"typeActor"`
	Data         CarData         `json:"data"`
	Dependencies CarDependencies `json:"dependencies"`
	ResourceID   string          `json:"-"`
}

// Actor is the subset of an actor record the shard writer needs.
type Actor interface {
	ActorID() string
	Resource() string
}

func (a *NodeActor) ActorID() string  { return a.ID }
func (a *NodeActor) Resource() string { return a.ResourceID }
func (a *LinkActor) ActorID() string  { return a.ID }
func (a *LinkActor) Resource() string { return a.ResourceID }
func (a *CarActor) ActorID() string   { return a.ID }
func (a *CarActor) Resource() string  { return a.ResourceID }

// DataSourceInfo locates one shard file on the runtime's mount point.
type DataSourceInfo struct {
	Path string `json:"path"`
}

// DataSource describes how one resource's actors are loaded.
type DataSource struct {
	SourceType string         `json:"sourceType"`
	Info       DataSourceInfo `json:"info"`
}

// ActorDataSource binds a resource id and class type to its data source.
type ActorDataSource struct {
	ID         string     `json:"id"`
	ClassType  string     `json:"classType"`
	DataSource DataSource `json:"dataSource"`
}

// SimulationConfig is the simulation.json manifest.
type SimulationConfig struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	StartRealTime     string            `json:"startRealTime"`
	TimeUnit          string            `json:"timeUnit"`
	TimeStep          int               `json:"timeStep"`
	Duration          int               `json:"duration"`
	StartTick         int               `json:"startTick"`
	ActorsDataSources []ActorDataSource `json:"actorsDataSources"`
}
