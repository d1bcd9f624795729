package plan

// ---------------------------------------------------------------------------
// Executable plan nodes.
//
// Every plan node embeds Plan, the shared base block (node ids, cost
// estimates, target list, quals, parameter sets, flow, subtrees). The wire
// serializer emits the base block through one helper so that reduced-mode
// field omission happens in exactly one place.
// ---------------------------------------------------------------------------

// ScanDirection is the requested direction of an index scan.
type ScanDirection int16

const (
	BackwardScanDirection ScanDirection = iota - 1
	NoMovementScanDirection
	ForwardScanDirection
)

// GangType classifies the process gang executing a slice.
type GangType int16

const (
	GangUnallocated GangType = iota
	GangEntryDBReader
	GangSingletonReader
	GangPrimaryReader
	GangPrimaryWriter
)

// LogicalIndexType classifies a logical index over a partitioned table.
type LogicalIndexType int16

const (
	IndexNormal LogicalIndexType = iota
	IndexBitmap
)

// DirectDispatchInfo says whether a slice can be sent to a subset of
// segments, and which ones.
type DirectDispatchInfo struct {
	IsDirectDispatch bool
	ContentIDs       *List
}

// Plan is the base block shared by all executable plan nodes. The id, cost,
// flow, and dispatch fields are omitted in reduced encoding mode.
type Plan struct {
	PlanNodeID       int32
	PlanParentNodeID int32

	StartupCost float64
	TotalCost   float64
	PlanRows    float64
	PlanWidth   int32

	Targetlist *List
	Qual       *List

	ExtParam *Bitmapset
	AllParam *Bitmapset

	NParamExec int32

	Flow           *Flow
	Dispatch       int32
	DirectDispatch DirectDispatchInfo

	NMotionNodes int32
	NInitPlans   int32

	SliceTable Node

	Lefttree  Node
	Righttree Node
	InitPlan  *List

	OperatorMemKB uint64
}

// Scan is the base block of all relation scans.
type Scan struct {
	Plan
	Scanrelid Index
}

// JoinFields is the base block of all join nodes.
type JoinFields struct {
	Plan
	PrefetchInner bool
	JoinType      JoinType
	JoinQual      *List
}

// PlannedStmt is the root of a finished plan tree.
type PlannedStmt struct {
	CommandType   CmdType
	PlanGen       PlanGenerator
	CanSetTag     bool
	TransientPlan bool

	PlanTree Node
	Rtable   *List

	ResultRelations *List
	UtilityStmt     Node
	IntoClause      Node
	Subplans        *List
	RewindPlanIDs   *Bitmapset
	ReturningLists  *List

	ResultPartitions      Node
	ResultAosegnos        *List
	QueryPartOids         *List
	QueryPartsMetadata    *List
	NumSelectorsPerScanID *List
	RowMarks              *List
	RelationOids          *List
	InvalItems            *List
	NCrossLevelParams     int32
	NMotionNodes          int32
	NInitPlans            int32

	// Don't serialize policy.
	SliceTable Node

	QueryMem             uint64
	TransientTypeRecords *List
}

// Result projects or filters without scanning a relation.
type Result struct {
	Plan
	ResConstantQual Node
}

// Repeat emits each input row a computed number of times.
type Repeat struct {
	Plan
	RepeatCountExpr Node
	Grouping        uint64
}

// Append concatenates its subplans.
type Append struct {
	Plan
	Appendplans *List
	IsTarget    bool
	IsZapped    bool
	HasXslice   bool
}

// Sequence runs its subplans in order and returns the last one's rows.
type Sequence struct {
	Plan
	Subplans *List
}

// BitmapAnd intersects bitmap subplan results.
type BitmapAnd struct {
	Plan
	Bitmapplans *List
}

// BitmapOr unions bitmap subplan results.
type BitmapOr struct {
	Plan
	Bitmapplans *List
}

type SeqScan struct {
	Scan
}

type AppendOnlyScan struct {
	Scan
}

type AOCSScan struct {
	Scan
}

type TableScan struct {
	Scan
}

// DynamicTableScan scans the parts of a partitioned table selected at
// runtime.
type DynamicTableScan struct {
	Scan
	PartIndex          int32
	PartIndexPrintable int32
}

// ExternalScan reads an external (URI-backed) table.
type ExternalScan struct {
	Scan
	URIList        *List
	FmtOptString   string
	FmtType        byte
	IsMasterOnly   bool
	RejLimit       int32
	RejLimitInRows bool
	Fmterrtbl      Oid
	Encoding       int32
	Scancounter    int32
}

type IndexScan struct {
	Scan
	Indexid       Oid
	IndexQual     *List
	IndexQualOrig *List
	IndexStrategy *List
	IndexSubtype  *List
	IndexOrderDir ScanDirection
}

// LogicalIndexInfo describes a logical index of a partitioned table; it is
// embedded in dynamic index scans, not dispatched on its own.
type LogicalIndexInfo struct {
	LogicalIndexOid Oid
	IndexKeys       []AttrNumber
	IndPred         *List
	IndExprs        *List
	IndIsUnique     bool
	IndType         LogicalIndexType
	PartCons        Node
	DefaultLevels   *List
}

type DynamicIndexScan struct {
	IndexScan
	PartIndex          int32
	PartIndexPrintable int32
	LogicalIndexInfo   *LogicalIndexInfo
}

type BitmapIndexScan struct {
	IndexScan
}

type BitmapHeapScan struct {
	Scan
	BitmapQualOrig *List
}

type BitmapAppendOnlyScan struct {
	Scan
	BitmapQualOrig *List
	IsAORow        bool
}

type BitmapTableScan struct {
	Scan
	BitmapQualOrig *List
}

type TidScan struct {
	Scan
	TidQuals *List
}

// SubqueryScan scans the output of a subplan. In reduced encoding mode with a
// range table present, the subplan is replaced by the referenced relation
// identifier so that cache keys do not depend on subplan internals already
// keyed elsewhere.
type SubqueryScan struct {
	Scan
	Subplan Node
	// Planner-only: subrtable -- not serialized.
}

type FunctionScan struct {
	Scan
}

type ValuesScan struct {
	Scan
}

type TableFunctionScan struct {
	Scan
}

type NestLoop struct {
	JoinFields
	SharedOuter    bool
	SingletonOuter bool
}

type MergeJoin struct {
	JoinFields
	MergeClauses *List
	UniqueOuter  bool
}

type HashJoin struct {
	JoinFields
	HashClauses     *List
	HashQualClauses *List
}

// Agg groups and aggregates its input.
type Agg struct {
	Plan
	AggStrategy AggStrategy
	GrpColIdx   []AttrNumber

	// Omitted in reduced mode.
	NumGroups  int64
	TransSpace int32

	NumNullCols      int32
	InputGrouping    uint64
	Grouping         uint64
	InputHasGrouping bool
	RollupGSTimes    int32
	LastAgg          bool
	Streaming        bool
}

// WindowKey is one ordering level of a Window node.
type WindowKey struct {
	SortColIdx    []AttrNumber
	SortOperators []Oid
	Frame         Node
}

// Window computes window functions over partitioned, ordered input.
type Window struct {
	Plan
	PartColIdx []AttrNumber
	WindowKeys *List
}

type Material struct {
	Plan
	CdbStrict bool

	ShareType     ShareType
	ShareID       int32
	DriverSlice   int32
	Nsharer       int32
	NsharerXslice int32
}

type ShareInputScan struct {
	Plan
	ShareType   ShareType
	ShareID     int32
	DriverSlice int32
}

type Sort struct {
	Plan
	SortColIdx    []AttrNumber
	SortOperators []Oid

	LimitOffset  Node
	LimitCount   Node
	NoDuplicates bool

	ShareType     ShareType
	ShareID       int32
	DriverSlice   int32
	Nsharer       int32
	NsharerXslice int32
}

type Unique struct {
	Plan
	UniqColIdx []AttrNumber
}

type SetOp struct {
	Plan
	Cmd        SetOpCmd
	DupColIdx  []AttrNumber
	FlagColIdx int32
}

type Limit struct {
	Plan
	LimitOffset Node
	LimitCount  Node
}

type Hash struct {
	Plan
	Rescannable bool
}

// Motion redistributes rows between process gangs.
type Motion struct {
	MotionID   int32
	MotionType MotionType
	SendSorted bool

	HashExpr      *List
	HashDataTypes *List

	OutputSegIdx []int32

	SortColIdx    []AttrNumber
	SortOperators []Oid

	SegidColIdx int32

	Plan
}

// DML is the ORCA-generated table modification node.
type DML struct {
	Plan
	Scanrelid      Index
	OidColIdx      int32
	ActionColIdx   int32
	CtidColIdx     int32
	TupleoidColIdx int32
}

// SplitUpdate turns updates into delete/insert row pairs.
type SplitUpdate struct {
	Plan
	ActionColIdx   int32
	CtidColIdx     int32
	TupleoidColIdx int32
	InsertColIdx   *List
	DeleteColIdx   *List
}

// RowTrigger fires row-level triggers in ORCA plans.
type RowTrigger struct {
	Plan
	Relid           Oid
	EventFlags      int32
	OldValuesColIdx *List
	NewValuesColIdx *List
}

// AssertOp raises an error when its condition fails at runtime.
type AssertOp struct {
	Plan
	ErrCode    int32
	ErrMessage *List
}

// PartitionSelector computes which partitions a join or scan must visit.
type PartitionSelector struct {
	Plan
	Relid                 Oid
	NLevels               int32
	ScanID                int32
	SelectorID            int32
	LevelEqExpressions    *List
	LevelExpressions      *List
	ResidualPredicate     Node
	PropagationExpression Node
	PrintablePredicate    Node
	StaticSelection       bool
	StaticPartOids        *List
	StaticScanIds         *List
}

// Flow describes the row distribution of a plan fragment.
type Flow struct {
	FlowType  FlowType
	ReqMove   Movement
	LocusType LocusType
	SegIndex  int32

	SortColIdx    []AttrNumber
	SortOperators []Oid

	HashExpr *List

	FlowBeforeReqMove *Flow
}

// Slice is one entry of the slice table.
type Slice struct {
	SliceIndex  int32
	ParentIndex int32
	Children    *List

	GangType                 GangType
	GangSize                 int32
	NumGangMembersToBeActive int32

	DirectDispatch DirectDispatchInfo

	// Don't serialize primaryGang.
	PrimaryProcesses *List
}

// SliceTable maps plan slices to process gangs for one query dispatch.
type SliceTable struct {
	NMotions   int32
	NInitPlans int32
	LocalSlice int32
	Slices     *List
	Instrument bool
}

// CdbProcess identifies one executing backend of a gang.
type CdbProcess struct {
	ListenerAddr string
	ListenerPort int32
	Pid          int32
	ContentID    int32
}

func (*PlannedStmt) node()          {}
func (*Result) node()               {}
func (*Repeat) node()               {}
func (*Append) node()               {}
func (*Sequence) node()             {}
func (*BitmapAnd) node()            {}
func (*BitmapOr) node()             {}
func (*SeqScan) node()              {}
func (*AppendOnlyScan) node()       {}
func (*AOCSScan) node()             {}
func (*TableScan) node()            {}
func (*DynamicTableScan) node()     {}
func (*ExternalScan) node()         {}
func (*IndexScan) node()            {}
func (*DynamicIndexScan) node()     {}
func (*BitmapIndexScan) node()      {}
func (*BitmapHeapScan) node()       {}
func (*BitmapAppendOnlyScan) node() {}
func (*BitmapTableScan) node()      {}
func (*TidScan) node()              {}
func (*SubqueryScan) node()         {}
func (*FunctionScan) node()         {}
func (*ValuesScan) node()           {}
func (*TableFunctionScan) node()    {}
func (*NestLoop) node()             {}
func (*MergeJoin) node()            {}
func (*HashJoin) node()             {}
func (*Agg) node()                  {}
func (*WindowKey) node()            {}
func (*Window) node()               {}
func (*Material) node()             {}
func (*ShareInputScan) node()       {}
func (*Sort) node()                 {}
func (*Unique) node()               {}
func (*SetOp) node()                {}
func (*Limit) node()                {}
func (*Hash) node()                 {}
func (*Motion) node()               {}
func (*DML) node()                  {}
func (*SplitUpdate) node()          {}
func (*RowTrigger) node()           {}
func (*AssertOp) node()             {}
func (*PartitionSelector) node()    {}
func (*Flow) node()                 {}
func (*Slice) node()                {}
func (*SliceTable) node()           {}
func (*CdbProcess) node()           {}
