package plan

// ---------------------------------------------------------------------------
// Scalar types and enumerations shared across the node model.
//
// Enum values are serialized as 2-byte signed codes; none of these may ever
// exceed the int16 range.
// ---------------------------------------------------------------------------

// Oid identifies a catalog object (relation, type, function, operator).
type Oid uint32

// InvalidOid is the null object identifier.
const InvalidOid Oid = 0

// Index is a 1-based position into the range table or a similar list.
type Index uint32

// AttrNumber is a 1-based column number within a relation.
type AttrNumber int16

// CmdType classifies the top-level command of a query or planned statement.
type CmdType int16

const (
	CmdUnknown CmdType = iota
	CmdSelect
	CmdUpdate
	CmdInsert
	CmdDelete
	CmdUtility
	CmdNothing
)

// PlanGenerator records which optimizer produced a plan.
type PlanGenerator int16

const (
	PlanGenLegacy PlanGenerator = iota
	PlanGenOptimizer
)

// QuerySource records where a query came from.
type QuerySource int16

const (
	QSrcOriginal QuerySource = iota
	QSrcParser
	QSrcInstead
	QSrcQual
	QSrcNonInstead
)

// JoinType enumerates the semantic join kinds.
type JoinType int16

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinFull
	JoinRight
	JoinIn
	JoinLASJ
	JoinLASJNotIn
)

// AggStrategy selects the grouping implementation of an Agg node.
type AggStrategy int16

const (
	AggPlain AggStrategy = iota
	AggSorted
	AggHashed
)

// AggStage marks which phase of a multi-phase aggregation a node performs.
type AggStage int16

const (
	AggStageNormal AggStage = iota
	AggStagePartial
	AggStageIntermediate
	AggStageFinal
)

// SetOpCmd selects the set operation a SetOp node performs.
type SetOpCmd int16

const (
	SetOpIntersect SetOpCmd = iota
	SetOpIntersectAll
	SetOpExcept
	SetOpExceptAll
)

// SetOperation is the set operation of a SetOperationStmt.
type SetOperation int16

const (
	SetOpNone SetOperation = iota
	SetOpUnion
	SetOpIntersectOp
	SetOpExceptOp
)

// MotionType selects how a Motion node redistributes rows.
type MotionType int16

const (
	MotionGather MotionType = iota
	MotionFixed
	MotionHash
	MotionExplicit
)

// FlowType describes row distribution of a plan fragment.
type FlowType int16

const (
	FlowUndefined FlowType = iota
	FlowSingleton
	FlowReplicated
	FlowPartitioned
)

// Movement is a requested change of flow.
type Movement int16

const (
	MoveNone Movement = iota
	MoveFocus
	MoveBroadcast
	MoveRepartition
	MoveExplicit
)

// LocusType describes where a flow executes.
type LocusType int16

const (
	LocusNull LocusType = iota
	LocusEntry
	LocusSingleQE
	LocusGeneral
	LocusReplicated
	LocusHashed
	LocusStrewn
)

// ShareType marks participation in a shared input scan.
type ShareType int16

const (
	ShareNone ShareType = iota
	ShareMaterial
	ShareMaterialXSlice
	ShareSort
	ShareSortXSlice
)

// SubLinkType classifies a sublink expression.
type SubLinkType int16

const (
	ExistsSublink SubLinkType = iota
	AllSublink
	AnySublink
	RowCompareSublink
	ExprSublink
	ArraySublink
	NotExistsSublink
)

// BoolExprType is the operator of a BoolExpr.
type BoolExprType int16

const (
	AndExpr BoolExprType = iota
	OrExpr
	NotExpr
)

// BoolTestType is the test of a BooleanTest.
type BoolTestType int16

const (
	IsTrue BoolTestType = iota
	IsNotTrue
	IsFalse
	IsNotFalse
	IsUnknown
	IsNotUnknown
)

// NullTestType is the test of a NullTest.
type NullTestType int16

const (
	IsNull NullTestType = iota
	IsNotNull
)

// MinMaxOp selects GREATEST or LEAST.
type MinMaxOp int16

const (
	IsGreatest MinMaxOp = iota
	IsLeast
)

// RowCompareType is the comparison of a RowCompareExpr.
type RowCompareType int16

const (
	RowCompareLT RowCompareType = iota + 1
	RowCompareLE
	RowCompareEQ
	RowCompareGE
	RowCompareGT
	RowCompareNE
)

// CoercionForm records how a coercion should be displayed; it also selects
// the output format of function-like expressions.
type CoercionForm int16

const (
	CoerceExplicitCall CoercionForm = iota
	CoerceExplicitCast
	CoerceImplicitCast
	CoerceDontCare
)

// ParamKind classifies a Param expression.
type ParamKind int16

const (
	ParamExtern ParamKind = iota
	ParamExec
	ParamSublink
)

// RTEKind discriminates range table entries.
type RTEKind int16

const (
	RTERelation RTEKind = iota
	RTESubquery
	RTEJoin
	RTESpecial
	RTEFunction
	RTETableFunction
	RTEValues
	RTECTE
	RTEVoid
)

// AExprKind discriminates raw parse-tree operator expressions.
type AExprKind int16

const (
	AExprOp AExprKind = iota
	AExprAnd
	AExprOr
	AExprNot
	AExprOpAny
	AExprOpAll
	AExprDistinct
	AExprNullIf
	AExprOf
	AExprIn
)

// ConstrType discriminates table constraints.
type ConstrType int16

const (
	ConstrNull ConstrType = iota
	ConstrNotNull
	ConstrDefault
	ConstrCheck
	ConstrPrimary
	ConstrUnique
	ConstrForeign
	ConstrAttrDeferrable
	ConstrAttrNotDeferrable
	ConstrAttrDeferred
	ConstrAttrImmediate
)

// ObjectType names the object class of a DDL statement.
type ObjectType int16

const (
	ObjectAggregate ObjectType = iota
	ObjectCast
	ObjectColumn
	ObjectConstraint
	ObjectConversion
	ObjectDatabase
	ObjectDomain
	ObjectExtProtocol
	ObjectFunction
	ObjectIndex
	ObjectLanguage
	ObjectOperator
	ObjectOpClass
	ObjectRelation
	ObjectRole
	ObjectRule
	ObjectSchema
	ObjectSequence
	ObjectTable
	ObjectTablespace
	ObjectTrigger
	ObjectType_
	ObjectView
)

// DropBehavior selects RESTRICT or CASCADE semantics.
type DropBehavior int16

const (
	DropRestrict DropBehavior = iota
	DropCascade
)

// OnCommitAction is the ON COMMIT disposition of a temporary table.
type OnCommitAction int16

const (
	OnCommitNoop OnCommitAction = iota
	OnCommitPreserveRows
	OnCommitDeleteRows
	OnCommitDrop
)

// GrantObjectType names what a GRANT statement targets.
type GrantObjectType int16

const (
	ACLObjectRelation GrantObjectType = iota
	ACLObjectSequence
	ACLObjectDatabase
	ACLObjectFunction
	ACLObjectLanguage
	ACLObjectNamespace
	ACLObjectTablespace
	ACLObjectExtProtocol
)

// SortByDir is the requested sort direction of an index column.
type SortByDir int16

const (
	SortByDefault SortByDir = iota
	SortByASC
	SortByDESC
	SortByUsing
)

// SortByNulls is the requested null ordering of an index column.
type SortByNulls int16

const (
	SortByNullsDefault SortByNulls = iota
	SortByNullsFirst
	SortByNullsLast
)

// TransactionStmtKind discriminates transaction control statements.
type TransactionStmtKind int16

const (
	TransBegin TransactionStmtKind = iota
	TransStart
	TransCommit
	TransRollback
	TransSavepoint
	TransRelease
	TransRollbackTo
	TransPrepare
	TransCommitPrepared
	TransRollbackPrepared
)

// FkMatchType is the MATCH clause of a foreign key constraint.
type FkMatchType int16

const (
	FkMatchFull FkMatchType = iota
	FkMatchPartial
	FkMatchUnspecified
)

// WindowExclusion is the frame exclusion clause of a window spec.
type WindowExclusion int16

const (
	WindowExclNone WindowExclusion = iota
	WindowExclCurrentRow
	WindowExclGroup
	WindowExclTies
)

// WindowBoundKind discriminates window frame edges.
type WindowBoundKind int16

const (
	WindowBoundUnboundedPreceding WindowBoundKind = iota
	WindowBoundBoundPreceding
	WindowBoundCurrentRow
	WindowBoundBoundFollowing
	WindowBoundUnboundedFollowing
	WindowBoundDelayedPreceding
	WindowBoundDelayedFollowing
)

// PercKind discriminates percentile expressions.
type PercKind int16

const (
	PercCont PercKind = iota
	PercDisc
	PercMedian
)

// PartitionKind is the partitioning scheme of one level.
type PartitionKind byte

const (
	PartitionRange PartitionKind = 'r'
	PartitionList  PartitionKind = 'l'
	PartitionHash  PartitionKind = 'h'
)

// AlterPartIDType discriminates AlterPartitionId references.
type AlterPartIDType int16

const (
	PartIDNone AlterPartIDType = iota
	PartIDName
	PartIDValue
	PartIDRank
	PartIDOid
)

// AlterTableType discriminates ALTER TABLE subcommands.
type AlterTableType int16

const (
	ATAddColumn AlterTableType = iota
	ATColumnDefault
	ATDropNotNull
	ATSetNotNull
	ATSetStatistics
	ATSetStorage
	ATDropColumn
	ATAddIndex
	ATAddConstraint
	ATDropConstraint
	ATAlterColumnType
	ATChangeOwner
	ATClusterOn
	ATDropCluster
	ATSetTableSpace
	ATSetRelOptions
	ATResetRelOptions
	ATEnableTrig
	ATDisableTrig
	ATAddInherit
	ATDropInherit
	ATSetDistributedBy
	ATPartAdd
	ATPartAlter
	ATPartDrop
	ATPartExchange
	ATPartRename
	ATPartSetTemplate
	ATPartSplit
	ATPartTruncate
)

// RoleStmtType discriminates CREATE ROLE / USER / GROUP.
type RoleStmtType int16

const (
	RoleStmtRole RoleStmtType = iota
	RoleStmtUser
	RoleStmtGroup
)

// FunctionParameterMode is the IN/OUT mode of a function parameter.
type FunctionParameterMode byte

const (
	FuncParamIn       FunctionParameterMode = 'i'
	FuncParamOut      FunctionParameterMode = 'o'
	FuncParamInOut    FunctionParameterMode = 'b'
	FuncParamVariadic FunctionParameterMode = 'v'
	FuncParamTable    FunctionParameterMode = 't'
)
