package plan

// ---------------------------------------------------------------------------
// Expression nodes: everything that can appear inside a target list, qual,
// or other expression position of a plan or query tree.
// ---------------------------------------------------------------------------

// InhOption is the inheritance request of a RangeVar.
type InhOption int16

const (
	InhNo InhOption = iota
	InhYes
	InhDefault
)

// WinStage marks which phase of distributed window computation a WindowRef
// performs.
type WinStage int16

const (
	WinStageImmediate WinStage = iota
	WinStagePreliminary
	WinStageRowKey
)

// ItemPointerSize is the on-wire width of a heap tuple identifier.
const ItemPointerSize = 6

// Alias names a range table entry and optionally its columns.
type Alias struct {
	Aliasname string
	Colnames  *List
}

// RangeVar references a relation by (possibly qualified) name.
type RangeVar struct {
	Catalogname string
	Schemaname  string
	Relname     string
	InhOpt      InhOption
	IsTemp      bool
	Alias       *Alias
	Location    int32
}

// IntoClause is the target of SELECT INTO / CREATE TABLE AS.
type IntoClause struct {
	Rel            *RangeVar
	ColNames       *List
	Options        *List
	OnCommit       OnCommitAction
	TableSpaceName string
}

// Var references a column of a range table entry.
type Var struct {
	Varno       Index
	Varattno    AttrNumber
	Vartype     Oid
	Vartypmod   int32
	Varlevelsup Index
	Varnoold    Index
	Varoattno   AttrNumber
}

// Const is a typed literal constant. Constvalue is serialized only when
// Constisnull is false, using Constlen/Constbyval as the datum metadata.
type Const struct {
	Consttype   Oid
	Constlen    int32
	Constbyval  bool
	Constisnull bool
	Constvalue  Datum
}

// Param is a run-time parameter reference.
type Param struct {
	Paramkind ParamKind
	Paramid   int32
	Paramtype Oid
}

// Aggref is an aggregate function call.
type Aggref struct {
	Aggfnoid    Oid
	Aggtype     Oid
	Args        *List
	Agglevelsup Index
	Aggstar     bool
	Aggdistinct bool
	Aggstage    AggStage
	AggOrder    Node
}

// AggOrder carries the ORDER BY clause of an ordered aggregate.
type AggOrder struct {
	SortImplicit bool
	SortClause   *List
	SortTargets  *List
}

// WindowRef is a window function call.
type WindowRef struct {
	Winfnoid    Oid
	Restype     Oid
	Args        *List
	Winlevelsup Index
	Windistinct bool
	Winspec     int32
	Winindex    int32
	Winstage    WinStage
	Winlevel    int32
}

// ArrayRef is an array subscript or slice, possibly as assignment target.
type ArrayRef struct {
	Refrestype      Oid
	Refarraytype    Oid
	Refelemtype     Oid
	RefUpperIndexpr *List
	RefLowerIndexpr *List
	Refexpr         Node
	Refassgnexpr    Node
}

// FuncExpr is a function call with resolved function identity.
type FuncExpr struct {
	Funcid         Oid
	Funcresulttype Oid
	Funcretset     bool
	Funcformat     CoercionForm
	Args           *List
	IsTablefunc    bool
}

// OpExpr is an operator invocation.
type OpExpr struct {
	Opno         Oid
	Opfuncid     Oid
	Opresulttype Oid
	Opretset     bool
	Args         *List
}

// DistinctExpr is IS DISTINCT FROM; structurally an OpExpr.
type DistinctExpr struct {
	Opno         Oid
	Opfuncid     Oid
	Opresulttype Oid
	Opretset     bool
	Args         *List
}

// ScalarArrayOpExpr is scalar op ANY/ALL (array).
type ScalarArrayOpExpr struct {
	Opno     Oid
	Opfuncid Oid
	UseOr    bool
	Args     *List
}

// BoolExpr is AND/OR/NOT over its argument list.
type BoolExpr struct {
	Boolop BoolExprType
	Args   *List
}

// SubLink is a parse-time subquery expression.
type SubLink struct {
	SubLinkType SubLinkType
	Testexpr    Node
	OperName    *List
	Location    int32
	Subselect   Node
}

// SubPlan is a planned subquery expression.
type SubPlan struct {
	SubLinkType SubLinkType

	QDispSliceID int32

	Testexpr Node
	ParamIds *List

	PlanID int32

	FirstColType   Oid
	FirstColTypmod int32

	UseHashTable   bool
	UnknownEqFalse bool

	IsInitplan bool
	IsMultirow bool

	SetParam *List
	ParParam *List
	Args     *List
}

// FieldSelect extracts one field from a composite value.
type FieldSelect struct {
	Arg          Node
	Fieldnum     AttrNumber
	Resulttype   Oid
	Resulttypmod int32
}

// FieldStore assigns into fields of a composite value.
type FieldStore struct {
	Arg        Node
	Newvals    *List
	Fieldnums  *List
	Resulttype Oid
}

// RelabelType is a binary-compatible type coercion.
type RelabelType struct {
	Arg           Node
	Resulttype    Oid
	Resulttypmod  int32
	Relabelformat CoercionForm
}

// ConvertRowtypeExpr coerces between compatible row types.
type ConvertRowtypeExpr struct {
	Arg           Node
	Resulttype    Oid
	Convertformat CoercionForm
}

// CaseExpr is a CASE expression.
type CaseExpr struct {
	Casetype  Oid
	Arg       Node
	Args      *List
	Defresult Node
}

// CaseWhen is one WHEN arm of a CaseExpr.
type CaseWhen struct {
	Expr   Node
	Result Node
}

// CaseTestExpr is the placeholder for the CASE test value.
type CaseTestExpr struct {
	TypeID  Oid
	TypeMod int32
}

// ArrayExpr is an ARRAY[...] constructor.
type ArrayExpr struct {
	ArrayTypeid   Oid
	ElementTypeid Oid
	Elements      *List
	Multidims     bool
}

// RowExpr is a ROW(...) constructor.
type RowExpr struct {
	Args      *List
	RowTypeid Oid
	RowFormat CoercionForm
}

// RowCompareExpr compares two row constructors.
type RowCompareExpr struct {
	Rctype    RowCompareType
	Opnos     *List
	Opclasses *List
	Largs     *List
	Rargs     *List
}

// CoalesceExpr is COALESCE(...).
type CoalesceExpr struct {
	Coalescetype Oid
	Args         *List
}

// MinMaxExpr is GREATEST/LEAST(...).
type MinMaxExpr struct {
	Minmaxtype Oid
	Op         MinMaxOp
	Args       *List
}

// NullIfExpr is NULLIF(a, b); structurally an OpExpr.
type NullIfExpr struct {
	Opno         Oid
	Opfuncid     Oid
	Opresulttype Oid
	Opretset     bool
	Args         *List
}

// NullTest is IS [NOT] NULL.
type NullTest struct {
	Arg          Node
	Nulltesttype NullTestType
}

// BooleanTest is IS [NOT] TRUE/FALSE/UNKNOWN.
type BooleanTest struct {
	Arg          Node
	Booltesttype BoolTestType
}

// CoerceToDomain applies domain constraints during coercion.
type CoerceToDomain struct {
	Arg            Node
	Resulttype     Oid
	Resulttypmod   int32
	Coercionformat CoercionForm
}

// CoerceToDomainValue is the placeholder for the value under a domain check.
type CoerceToDomainValue struct {
	TypeID  Oid
	TypeMod int32
}

// SetToDefault is the DEFAULT placeholder in INSERT/UPDATE.
type SetToDefault struct {
	TypeID  Oid
	TypeMod int32
}

// CurrentOfExpr is WHERE CURRENT OF cursor.
type CurrentOfExpr struct {
	CursorName  string
	Cvarno      Index
	TargetRelid Oid
	GpSegmentID int32
	Ctid        [ItemPointerSize]byte
	Tableoid    Oid
}

// TargetEntry is one output column of a plan or query level.
type TargetEntry struct {
	Expr            Node
	Resno           AttrNumber
	Resname         string
	Ressortgroupref Index
	Resorigtbl      Oid
	Resorigcol      AttrNumber
	Resjunk         bool
}

// RangeTblRef references a range table entry from a jointree.
type RangeTblRef struct {
	Rtindex int32
}

// JoinExpr is a parse-tree join.
type JoinExpr struct {
	Jointype    JoinType
	IsNatural   bool
	Larg        Node
	Rarg        Node
	UsingClause *List
	Quals       Node
	Alias       *Alias
	Rtindex     int32
}

// FromExpr is the top of a query's jointree.
type FromExpr struct {
	Fromlist *List
	Quals    Node
}

// GroupingFunc is the GROUPING(...) pseudo-function.
type GroupingFunc struct {
	Args     *List
	Ngrpcols int32
}

// Grouping is the per-row grouping bitmap pseudo-column.
type Grouping struct{}

// GroupId is the per-row rollup group id pseudo-column.
type GroupId struct{}

// PercentileExpr is PERCENTILE_CONT/DISC or MEDIAN.
type PercentileExpr struct {
	Perctype    Oid
	Args        *List
	Perckind    PercKind
	SortClause  *List
	SortTargets *List
}

// DMLActionExpr resolves to the current DML action in split updates.
type DMLActionExpr struct{}

// PartOidExpr resolves to the Oid of the selected partition.
type PartOidExpr struct {
	Level int32
}

// PartDefaultExpr tests whether the selected partition is the default one.
type PartDefaultExpr struct {
	Level int32
}

// PartBoundExpr resolves to a partition boundary value.
type PartBoundExpr struct {
	Level        int32
	BoundType    Oid
	IsLowerBound bool
}

// PartBoundInclusionExpr tests boundary inclusiveness.
type PartBoundInclusionExpr struct {
	Level        int32
	IsLowerBound bool
}

// PartBoundOpenExpr tests whether a partition boundary is open.
type PartBoundOpenExpr struct {
	Level        int32
	IsLowerBound bool
}

// TableValueExpr is TABLE(subquery) as a value expression.
type TableValueExpr struct {
	Subquery Node
}

func (*Alias) node()                  {}
func (*RangeVar) node()               {}
func (*IntoClause) node()             {}
func (*Var) node()                    {}
func (*Const) node()                  {}
func (*Param) node()                  {}
func (*Aggref) node()                 {}
func (*AggOrder) node()               {}
func (*WindowRef) node()              {}
func (*ArrayRef) node()               {}
func (*FuncExpr) node()               {}
func (*OpExpr) node()                 {}
func (*DistinctExpr) node()           {}
func (*ScalarArrayOpExpr) node()      {}
func (*BoolExpr) node()               {}
func (*SubLink) node()                {}
func (*SubPlan) node()                {}
func (*FieldSelect) node()            {}
func (*FieldStore) node()             {}
func (*RelabelType) node()            {}
func (*ConvertRowtypeExpr) node()     {}
func (*CaseExpr) node()               {}
func (*CaseWhen) node()               {}
func (*CaseTestExpr) node()           {}
func (*ArrayExpr) node()              {}
func (*RowExpr) node()                {}
func (*RowCompareExpr) node()         {}
func (*CoalesceExpr) node()           {}
func (*MinMaxExpr) node()             {}
func (*NullIfExpr) node()             {}
func (*NullTest) node()               {}
func (*BooleanTest) node()            {}
func (*CoerceToDomain) node()         {}
func (*CoerceToDomainValue) node()    {}
func (*SetToDefault) node()           {}
func (*CurrentOfExpr) node()          {}
func (*TargetEntry) node()            {}
func (*RangeTblRef) node()            {}
func (*JoinExpr) node()               {}
func (*FromExpr) node()               {}
func (*GroupingFunc) node()           {}
func (*Grouping) node()               {}
func (*GroupId) node()                {}
func (*PercentileExpr) node()         {}
func (*DMLActionExpr) node()          {}
func (*PartOidExpr) node()            {}
func (*PartDefaultExpr) node()        {}
func (*PartBoundExpr) node()          {}
func (*PartBoundInclusionExpr) node() {}
func (*PartBoundOpenExpr) node()      {}
func (*TableValueExpr) node()         {}
