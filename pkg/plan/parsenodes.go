package plan

// ---------------------------------------------------------------------------
// Parse-tree and utility statement nodes.
//
// Several statement fields are deliberately never serialized (planner-side
// scratch state, QD-only analysis results); those carry a "not serialized"
// note and the decoder supplies defaults for them.
// ---------------------------------------------------------------------------

// GroupingType discriminates extended grouping clauses.
type GroupingType int16

const (
	GroupingRollup GroupingType = iota
	GroupingCube
	GroupingSets
)

// PartitionEdge says which side of a range a PartitionRangeItem bounds.
type PartitionEdge int16

const (
	PartEdgeUnspecified PartitionEdge = iota
	PartEdgeInclusive
	PartEdgeExclusive
)

// Query is an analyzed statement.
type Query struct {
	CommandType CmdType
	QuerySource QuerySource
	CanSetTag   bool

	UtilityStmt    Node
	ResultRelation int32
	IntoClause     *IntoClause
	HasAggs        bool
	HasWindFuncs   bool
	HasSubLinks    bool

	Rtable         *List
	Jointree       *FromExpr
	TargetList     *List
	ReturningList  *List
	GroupClause    *List
	HavingQual     Node
	WindowClause   *List
	DistinctClause *List
	SortClause     *List
	ScatterClause  *List
	CteList        *List
	HasRecursive   bool
	HasModifyingCTE bool
	LimitOffset    Node
	LimitCount     Node
	RowMarks       *List
	SetOperations  Node

	ResultRelations  *List
	ResultPartitions Node
	ResultAosegnos   *List
	ReturningLists   *List
	// Don't serialize policy.
}

// RangeTblEntry is one entry of a query's range table. The fields after
// Rtekind depend on the kind; unknown kinds are a fatal encoding error.
type RangeTblEntry struct {
	Alias   *Alias
	Eref    *Alias
	Rtekind RTEKind

	// RTERelation / RTESpecial
	Relid Oid

	// RTESubquery / RTETableFunction
	Subquery Node

	// RTECTE
	Ctename       string
	Ctelevelsup   Index
	SelfReference bool
	Ctecoltypes   *List
	Ctecoltypmods *List

	// RTEFunction / RTETableFunction
	Funcexpr       Node
	Funccoltypes   *List
	Funccoltypmods *List
	Funcuserdata   []byte

	// RTEValues
	ValuesLists *List

	// RTEJoin
	Jointype      JoinType
	Joinaliasvars *List

	Inh           bool
	InFromCl      bool
	RequiredPerms uint32
	CheckAsUser   Oid

	ForceDistRandom bool
}

// AExpr is a raw-parse-tree operator expression. Only AExprOp and the
// ANY/ALL/DISTINCT/NULLIF/OF/IN kinds carry an operator name.
type AExpr struct {
	Kind     AExprKind
	Name     *List
	Lexpr    Node
	Rexpr    Node
	Location int32
}

// ColumnRef is an unresolved column reference.
type ColumnRef struct {
	Fields   *List
	Location int32
}

// ParamRef is an unresolved $n parameter reference.
type ParamRef struct {
	Number   int32
	Location int32
}

// AConst is a literal in the raw parse tree; Val holds one of the value
// leaf types.
type AConst struct {
	Val      Node
	Typname  *TypeName
	Location int32
}

// AIndices is a subscript or slice bound pair.
type AIndices struct {
	Lidx Node
	Uidx Node
}

// AIndirection applies subscripts/field selections to its argument.
type AIndirection struct {
	Arg         Node
	Indirection *List
}

// ResTarget is one raw target-list or SET-clause entry.
type ResTarget struct {
	Name        string
	Indirection *List
	Val         Node
	Location    int32
}

// Constraint is a raw column or table constraint. The fields after Contype
// depend on the kind: key constraints carry keys/options/indexspace, check
// and default constraints carry the expression pair, attribute markers carry
// nothing. A kind outside this set has no defined encoding and is a fatal
// error.
type Constraint struct {
	Name    string
	Conoid  Oid
	Contype ConstrType

	// ConstrPrimary / ConstrUnique
	Keys       *List
	Options    *List
	Indexspace string

	// ConstrCheck / ConstrDefault
	RawExpr    Node
	CookedExpr string
}

// FkConstraint is a raw foreign key constraint.
type FkConstraint struct {
	ConstrName string
	ConstrOid  Oid
	Pktable    *RangeVar
	FkAttrs    *List
	PkAttrs    *List
	FkMatchtype byte
	FkUpdAction byte
	FkDelAction byte
	Deferrable  bool
	Initdeferred bool
	SkipValidation bool

	Trig1Oid Oid
	Trig2Oid Oid
	Trig3Oid Oid
	Trig4Oid Oid
}

// FuncCall is a raw function invocation.
type FuncCall struct {
	Funcname    Node
	Args        *List
	AggOrder    *List
	AggStar     bool
	AggDistinct bool
	Location    int32
}

// DefElem is a name/value definition list element.
type DefElem struct {
	Defname string
	Arg     Node
}

// TypeName references a type by name or resolved Oid.
type TypeName struct {
	Names       *List
	Typid       Oid
	Timezone    bool
	Setof       bool
	PctType     bool
	Typmod      int32
	ArrayBounds *List
	Location    int32
}

// TypeCast is a raw CAST expression.
type TypeCast struct {
	Arg     Node
	Typname *TypeName
}

// ColumnDef is a raw column definition.
type ColumnDef struct {
	Colname       string
	Typname       *TypeName
	Inhcount      int32
	IsLocal       bool
	IsNotNull     bool
	Attnum        int32
	DefaultOid    Oid
	RawDefault    Node
	DefaultIsNull bool
	CookedDefault string
	Constraints   *List
	Encoding      *List
}

// IndexElem is one index column or expression.
type IndexElem struct {
	Name          string
	Expr          Node
	Opclass       *List
	Ordering      SortByDir
	NullsOrdering SortByNulls
}

// SortClause marks one target as a sort key.
type SortClause struct {
	TleSortGroupRef Index
	Sortop          Oid
}

// GroupClause marks one target as a grouping key.
type GroupClause struct {
	TleSortGroupRef Index
	Sortop          Oid
}

// GroupingClause is a ROLLUP/CUBE/GROUPING SETS clause.
type GroupingClause struct {
	GroupType GroupingType
	Groupsets *List
}

// WindowSpec is a raw window definition.
type WindowSpec struct {
	Name      string
	Parent    string
	Partition *List
	Order     *List
	Frame     *WindowFrame
	Location  int32
}

// WindowFrame is a raw window frame clause.
type WindowFrame struct {
	IsRows    bool
	IsBetween bool
	Trail     *WindowFrameEdge
	Lead      *WindowFrameEdge
	Exclude   WindowExclusion
}

// WindowFrameEdge is one bound of a window frame.
type WindowFrameEdge struct {
	Kind WindowBoundKind
	Val  Node
}

// RowMarkClause is FOR UPDATE/SHARE of one range table entry.
type RowMarkClause struct {
	Rti       Index
	ForUpdate bool
	NoWait    bool
}

// WithClause is a raw WITH list.
type WithClause struct {
	Ctes      *List
	Recursive bool
	Location  int32
}

// CommonTableExpr is one WITH query.
type CommonTableExpr struct {
	Ctename       string
	Aliascolnames *List
	Ctequery      Node
	Cterecursive  bool
	Cterefcount   int32
	Ctecolnames   *List
	Ctecoltypes   *List
	Ctecoltypmods *List
}

// SetOperationStmt is an analyzed UNION/INTERSECT/EXCEPT tree.
type SetOperationStmt struct {
	Op         SetOperation
	All        bool
	Larg       Node
	Rarg       Node
	ColTypes   *List
	ColTypmods *List
}

// OidAssignments is the block of pre-assigned Oids dispatched with a
// CreateStmt so every segment creates identical catalog entries.
type OidAssignments struct {
	RelOid               Oid
	ComptypeOid          Oid
	ToastOid             Oid
	ToastIndexOid        Oid
	ToastComptypeOid     Oid
	AosegOid             Oid
	AosegIndexOid        Oid
	AosegComptypeOid     Oid
	AovisimapOid         Oid
	AovisimapIndexOid    Oid
	AovisimapComptypeOid Oid
	AoblkdirOid          Oid
	AoblkdirIndexOid     Oid
	AoblkdirComptypeOid  Oid
}

// CreateStmt is CREATE TABLE.
type CreateStmt struct {
	Relation       *RangeVar
	TableElts      *List
	InhRelations   *List
	InhOids        *List
	ParentOidCount int32
	Constraints    *List
	Options        *List
	Oncommit       OnCommitAction
	Tablespacename string
	DistributedBy  Node
	OidInfo        OidAssignments
	RelKind        byte
	RelStorage     byte
	// Don't serialize policy.
	// postCreate, deferredStmts -- analysis state, QD only, not serialized.
	IsPartChild  bool
	IsAddPart    bool
	IsSplitPart  bool
	Ownerid      Oid
	BuildAoBlkdir bool
	IsErrorTable bool
	AttrEncodings *List
}

// InheritPartitionCmd attaches a child via inheritance.
type InheritPartitionCmd struct {
	Parent *RangeVar
}

// AlterPartitionCmd is one ALTER TABLE ... PARTITION action.
type AlterPartitionCmd struct {
	Partid  Node
	Arg1    Node
	Arg2    Node
	NewOids *List
}

// AlterPartitionId picks a partition by name, value, or rank.
type AlterPartitionId struct {
	Idtype    AlterPartIDType
	Partiddef Node
	Location  int32
}

// PartitionBy is the raw PARTITION BY clause of one level.
type PartitionBy struct {
	PartType   PartitionKind
	Keys       *List
	KeyOpclass *List
	PartNum    Node
	SubPart    Node
	PartSpec   Node
	PartDepth  int32
	Location   int32
}

// PartitionElem is one partition declaration.
type PartitionElem struct {
	PartName  string
	BoundSpec Node
	SubSpec   Node
	IsDefault bool
	StoreAttr Node
	Partno    int32
	Rrand     uint64
	Colencs   *List
	Location  int32
}

// PartitionRangeItem is one START/END/EVERY value list.
type PartitionRangeItem struct {
	PartRangeVal *List
	Partedge     PartitionEdge
	Everycount   int32
}

// PartitionBoundSpec is the boundary triple of a range partition.
type PartitionBoundSpec struct {
	PartStart Node
	PartEnd   Node
	PartEvery Node
	Location  int32
}

// PartitionSpec is the partition list of one level.
type PartitionSpec struct {
	PartElem   Node
	SubSpec    Node
	Istemplate bool
	Location   int32
	EncClauses *List
}

// PartitionValuesSpec is the VALUES list of a list partition.
type PartitionValuesSpec struct {
	PartValues *List
	Location   int32
}

// Partition is the catalog form of one partition level.
type Partition struct {
	Partid        Oid
	Parrelid      Oid
	Parkind       PartitionKind
	Parlevel      int32
	Paristemplate bool
	Paratts       []int16
	Parclass      []Oid
}

// PartitionRule is the catalog form of one partition.
type PartitionRule struct {
	Parruleid         Oid
	Paroid            Oid
	Parchildrelid     Oid
	Parparentoid      Oid
	Parisdefault      bool
	Parname           string
	Parrangestart     Node
	Parrangestartincl bool
	Parrangeend       Node
	Parrangeendincl   bool
	Parrangeevery     Node
	Parlistvalues     *List
	Parruleord        int16
	Parreloptions     *List
	PartemplatespaceID Oid
	Children          *List
}

// PartitionNode is the in-memory partition hierarchy of one level.
type PartitionNode struct {
	Part        Node
	DefaultPart Node
	Rules       *List
}

// PgPartRule pairs a PartitionNode with the rule that selected it.
type PgPartRule struct {
	PNode       Node
	TopRule     Node
	PartIDStr   string
	IsName      bool
	TopRuleRank int32
	Relname     string
}

// IndexStmt is CREATE INDEX.
type IndexStmt struct {
	Idxname      string
	Relation     *RangeVar
	AccessMethod string
	TableSpace   string
	IndexParams  *List
	Options      *List
	WhereClause  Node
	Rangetable   *List
	Unique       bool
	Primary      bool
	Isconstraint bool
	AltConName   string
	ConstrOid    Oid
	Concurrent   bool
}

// ReindexStmt is REINDEX.
type ReindexStmt struct {
	Kind     ObjectType
	Relation *RangeVar
	Name     string
	DoSystem bool
	DoUser   bool
}

// DropStmt is DROP of any object class.
type DropStmt struct {
	Objects     *List
	RemoveType  ObjectType
	Behavior    DropBehavior
	MissingOk   bool
	AllowPartn  bool
}

// TruncateStmt is TRUNCATE.
type TruncateStmt struct {
	Relations *List
	Behavior  DropBehavior
}

// AlterTableStmt is ALTER TABLE and friends.
type AlterTableStmt struct {
	Relation *RangeVar
	Cmds     *List
	Relkind  ObjectType
}

// AlterTableCmd is one ALTER TABLE subcommand.
type AlterTableCmd struct {
	Subtype      AlterTableType
	Name         string
	Def          Node
	Transform    Node
	Behavior     DropBehavior
	PartExpanded bool
	Partoids     *List
}

// CreateSeqStmt is CREATE SEQUENCE.
type CreateSeqStmt struct {
	Sequence    *RangeVar
	Options     *List
	RelOid      Oid
	ComptypeOid Oid
}

// AlterSeqStmt is ALTER SEQUENCE.
type AlterSeqStmt struct {
	Sequence *RangeVar
	Options  *List
}

// CreatedbStmt is CREATE DATABASE.
type CreatedbStmt struct {
	Dbname  string
	Options *List
	DbOid   Oid
}

// DropdbStmt is DROP DATABASE.
type DropdbStmt struct {
	Dbname    string
	MissingOk bool
}

// CreateDomainStmt is CREATE DOMAIN.
type CreateDomainStmt struct {
	Domainname  *List
	Typname     *TypeName
	Constraints *List
	DomainOid   Oid
}

// AlterDomainStmt is ALTER DOMAIN.
type AlterDomainStmt struct {
	Subtype  byte
	Typname  *List
	Name     string
	Def      Node
	Behavior DropBehavior
}

// CreateFunctionStmt is CREATE FUNCTION.
type CreateFunctionStmt struct {
	Replace      bool
	Funcname     *List
	Parameters   *List
	ReturnType   *TypeName
	Options      *List
	WithClause   *List
	FuncOid      Oid
	ShelltypeOid Oid
}

// FunctionParameter is one declared function parameter.
type FunctionParameter struct {
	Name    string
	ArgType *TypeName
	Mode    FunctionParameterMode
}

// RemoveFuncStmt is DROP FUNCTION/AGGREGATE/OPERATOR.
type RemoveFuncStmt struct {
	Kind      ObjectType
	Name      *List
	Args      *List
	Behavior  DropBehavior
	MissingOk bool
}

// AlterFunctionStmt is ALTER FUNCTION.
type AlterFunctionStmt struct {
	Func    *FuncWithArgs
	Actions *List
}

// DefineStmt is CREATE of operators, aggregates, and types with a
// definition list.
type DefineStmt struct {
	Kind       ObjectType
	Oldstyle   bool
	Defnames   *List
	Args       *List
	Definition *List
	NewOid     Oid
	ShadowOid  Oid
	Ordered    bool
	Trusted    bool
}

// CompositeTypeStmt is CREATE TYPE AS.
type CompositeTypeStmt struct {
	Typevar     *RangeVar
	Coldeflist  *List
	RelOid      Oid
	ComptypeOid Oid
}

// ViewStmt is CREATE VIEW.
type ViewStmt struct {
	View        *RangeVar
	Aliases     *List
	Query       Node
	Replace     bool
	RelOid      Oid
	ComptypeOid Oid
	RewriteOid  Oid
}

// RuleStmt is CREATE RULE.
type RuleStmt struct {
	Relation    *RangeVar
	Rulename    string
	WhereClause Node
	Event       CmdType
	Instead     bool
	Actions     *List
	Replace     bool
	RuleOid     Oid
}

// TransactionStmt is transaction control.
type TransactionStmt struct {
	Kind    TransactionStmtKind
	Options *List
}

// DeclareCursorStmt is DECLARE CURSOR.
type DeclareCursorStmt struct {
	Portalname        string
	Options           int32
	Query             Node
	IsSimplyUpdatable bool
}

// NotifyStmt is NOTIFY.
type NotifyStmt struct {
	Relation *RangeVar
}

// CopyStmt is COPY.
type CopyStmt struct {
	Relation *RangeVar
	Query    Node
	Attlist  *List
	IsFrom   bool
	Filename string
	Options  *List
	Sreh     Node
}

// SingleRowErrorDesc configures single-row error handling of a load.
type SingleRowErrorDesc struct {
	Errtable                *RangeVar
	Rejectlimit             int32
	IsKeep                  bool
	IsLimitInRows           bool
	ReusingExistingErrtable bool
	IntoFile                bool
}

// VacuumStmt is VACUUM/ANALYZE.
type VacuumStmt struct {
	Vacuum        bool
	Full          bool
	Analyze       bool
	Verbose       bool
	Rootonly      bool
	FreezeMinAge  int32
	Relation      *RangeVar
	VaCols        *List
	ExpandedRelids *List
	AppendonlyCompactionSegno       *List
	AppendonlyCompactionInsertSegno *List
	HeapTruncate  bool
}

// ClusterStmt is CLUSTER.
type ClusterStmt struct {
	Relation  *RangeVar
	Indexname string
}

// LockStmt is LOCK TABLE.
type LockStmt struct {
	Relations *List
	Mode      int32
	Nowait    bool
}

// RenameStmt is ALTER ... RENAME.
type RenameStmt struct {
	Relation   *RangeVar
	Objid      Oid
	Object     *List
	Subname    string
	Newname    string
	RenameType ObjectType
	AllowPartn bool
}

// GrantStmt is GRANT/REVOKE.
type GrantStmt struct {
	IsGrant     bool
	Objtype     GrantObjectType
	Objects     *List
	Privileges  *List
	Grantees    *List
	GrantOption bool
	Behavior    DropBehavior
	CookedPrivs *List
}

// PrivGrantee names one grantee role.
type PrivGrantee struct {
	Rolname string
}

// FuncWithArgs names a function by name and argument types.
type FuncWithArgs struct {
	Funcname *List
	Funcargs *List
}

// GrantRoleStmt is GRANT/REVOKE of role membership.
type GrantRoleStmt struct {
	GrantedRoles *List
	GranteeRoles *List
	IsGrant      bool
	AdminOpt     bool
	Grantor      string
	Behavior     DropBehavior
}

// CreateSchemaStmt is CREATE SCHEMA.
type CreateSchemaStmt struct {
	Schemaname string
	Authid     string
	SchemaElts *List
	Istemp     bool
}

// CreateRoleStmt is CREATE ROLE/USER/GROUP.
type CreateRoleStmt struct {
	StmtType RoleStmtType
	Role     string
	Options  *List
	RoleOid  Oid
}

// DropRoleStmt is DROP ROLE.
type DropRoleStmt struct {
	Roles     *List
	MissingOk bool
}

// AlterRoleStmt is ALTER ROLE.
type AlterRoleStmt struct {
	Role    string
	Options *List
}

// AlterRoleSetStmt is ALTER ROLE ... SET.
type AlterRoleSetStmt struct {
	Role     string
	Variable string
	Value    *List
}

// AlterObjectSchemaStmt is ALTER ... SET SCHEMA.
type AlterObjectSchemaStmt struct {
	Relation   *RangeVar
	Object     *List
	Objarg     *List
	Addname    string
	Newschema  string
	ObjectType ObjectType
}

// AlterOwnerStmt is ALTER ... OWNER TO.
type AlterOwnerStmt struct {
	ObjectType ObjectType
	Relation   *RangeVar
	Object     *List
	Objarg     *List
	Addname    string
	Newowner   string
}

// AttributeFixedSize is the on-wire width of one fixed-part attribute
// descriptor of a TupleDescNode.
const AttributeFixedSize = 108

// TupleDescNode ships a record type descriptor between processes. Each
// attribute's fixed part is an opaque binary block of AttributeFixedSize
// bytes.
type TupleDescNode struct {
	Natts      int32
	Attrs      [][]byte
	TdTypeid   Oid
	TdTypmod   int32
	TdQdTypmod int32
	TdHasOid   bool
	TdRefcount int32
}

// SegfileMapNode maps one result relation to its append-only segfile.
type SegfileMapNode struct {
	Relid Oid
	Segno int32
}

func (*Query) node()                 {}
func (*RangeTblEntry) node()         {}
func (*AExpr) node()                 {}
func (*ColumnRef) node()             {}
func (*ParamRef) node()              {}
func (*AConst) node()                {}
func (*AIndices) node()              {}
func (*AIndirection) node()          {}
func (*ResTarget) node()             {}
func (*Constraint) node()            {}
func (*FkConstraint) node()          {}
func (*FuncCall) node()              {}
func (*DefElem) node()               {}
func (*TypeName) node()              {}
func (*TypeCast) node()              {}
func (*ColumnDef) node()             {}
func (*IndexElem) node()             {}
func (*SortClause) node()            {}
func (*GroupClause) node()           {}
func (*GroupingClause) node()        {}
func (*WindowSpec) node()            {}
func (*WindowFrame) node()           {}
func (*WindowFrameEdge) node()       {}
func (*RowMarkClause) node()         {}
func (*WithClause) node()            {}
func (*CommonTableExpr) node()       {}
func (*SetOperationStmt) node()      {}
func (*CreateStmt) node()            {}
func (*InheritPartitionCmd) node()   {}
func (*AlterPartitionCmd) node()     {}
func (*AlterPartitionId) node()      {}
func (*PartitionBy) node()           {}
func (*PartitionElem) node()         {}
func (*PartitionRangeItem) node()    {}
func (*PartitionBoundSpec) node()    {}
func (*PartitionSpec) node()         {}
func (*PartitionValuesSpec) node()   {}
func (*Partition) node()             {}
func (*PartitionRule) node()         {}
func (*PartitionNode) node()         {}
func (*PgPartRule) node()            {}
func (*IndexStmt) node()             {}
func (*ReindexStmt) node()           {}
func (*DropStmt) node()              {}
func (*TruncateStmt) node()          {}
func (*AlterTableStmt) node()        {}
func (*AlterTableCmd) node()         {}
func (*CreateSeqStmt) node()         {}
func (*AlterSeqStmt) node()          {}
func (*CreatedbStmt) node()          {}
func (*DropdbStmt) node()            {}
func (*CreateDomainStmt) node()      {}
func (*AlterDomainStmt) node()       {}
func (*CreateFunctionStmt) node()    {}
func (*FunctionParameter) node()     {}
func (*RemoveFuncStmt) node()        {}
func (*AlterFunctionStmt) node()     {}
func (*DefineStmt) node()            {}
func (*CompositeTypeStmt) node()     {}
func (*ViewStmt) node()              {}
func (*RuleStmt) node()              {}
func (*TransactionStmt) node()       {}
func (*DeclareCursorStmt) node()     {}
func (*NotifyStmt) node()            {}
func (*CopyStmt) node()              {}
func (*SingleRowErrorDesc) node()    {}
func (*VacuumStmt) node()            {}
func (*ClusterStmt) node()           {}
func (*LockStmt) node()              {}
func (*RenameStmt) node()            {}
func (*GrantStmt) node()             {}
func (*PrivGrantee) node()           {}
func (*FuncWithArgs) node()          {}
func (*GrantRoleStmt) node()         {}
func (*CreateSchemaStmt) node()      {}
func (*CreateRoleStmt) node()        {}
func (*DropRoleStmt) node()          {}
func (*AlterRoleStmt) node()         {}
func (*AlterRoleSetStmt) node()      {}
func (*AlterObjectSchemaStmt) node() {}
func (*AlterOwnerStmt) node()        {}
func (*TupleDescNode) node()         {}
func (*SegfileMapNode) node()        {}
