package wire

// ---------------------------------------------------------------------------
// Frozen tag values for the binary plan serialization format.
//
// IMPORTANT: These tags are FROZEN. The decoder on the receiving side carries
// the same registry by value; changing an existing tag silently misaligns
// every stream. Adding new tags is fine, reusing or renumbering is not.
// ---------------------------------------------------------------------------

// Tag identifies a node variant in the serialized byte stream. Two bytes,
// big-endian. TagNull (0) marks a null node or null list and never collides
// with a real variant.
type Tag uint16

// Sentinel is appended after the root node's encoding. It is an end-of-stream
// assertion for the decoder, not a checksum.
const Sentinel Tag = 0xDEAD

const (
	TagNull Tag = 0 // null node / null list, reserved

	// Containers
	TagList    Tag = 1
	TagIntList Tag = 2
	TagOidList Tag = 3

	// Value leaves
	TagInteger   Tag = 10
	TagFloat     Tag = 11
	TagString    Tag = 12
	TagBitString Tag = 13
	TagNullValue Tag = 14

	// Plan nodes
	TagPlannedStmt          Tag = 100
	TagResult               Tag = 101
	TagRepeat               Tag = 102
	TagAppend               Tag = 103
	TagSequence             Tag = 104
	TagBitmapAnd            Tag = 105
	TagBitmapOr             Tag = 106
	TagSeqScan              Tag = 107
	TagAppendOnlyScan       Tag = 108
	TagAOCSScan             Tag = 109
	TagTableScan            Tag = 110
	TagDynamicTableScan     Tag = 111
	TagExternalScan         Tag = 112
	TagIndexScan            Tag = 113
	TagDynamicIndexScan     Tag = 114
	TagBitmapIndexScan      Tag = 115
	TagBitmapHeapScan       Tag = 116
	TagBitmapAppendOnlyScan Tag = 117
	TagBitmapTableScan      Tag = 118
	TagTidScan              Tag = 119
	TagSubqueryScan         Tag = 120
	TagFunctionScan         Tag = 121
	TagValuesScan           Tag = 122
	TagTableFunctionScan    Tag = 123
	TagNestLoop             Tag = 124
	TagMergeJoin            Tag = 125
	TagHashJoin             Tag = 126
	TagAgg                  Tag = 127
	TagWindowKey            Tag = 128
	TagWindow               Tag = 129
	TagMaterial             Tag = 130
	TagShareInputScan       Tag = 131
	TagSort                 Tag = 132
	TagUnique               Tag = 133
	TagSetOp                Tag = 134
	TagLimit                Tag = 135
	TagHash                 Tag = 136
	TagMotion               Tag = 137
	TagDML                  Tag = 138
	TagSplitUpdate          Tag = 139
	TagRowTrigger           Tag = 140
	TagAssertOp             Tag = 141
	TagPartitionSelector    Tag = 142
	TagFlow                 Tag = 143
	TagSlice                Tag = 144
	TagSliceTable           Tag = 145
	TagCdbProcess           Tag = 146

	// Expression nodes
	TagAlias                  Tag = 200
	TagRangeVar               Tag = 201
	TagIntoClause             Tag = 202
	TagVar                    Tag = 203
	TagConst                  Tag = 204
	TagParam                  Tag = 205
	TagAggref                 Tag = 206
	TagAggOrder               Tag = 207
	TagWindowRef              Tag = 208
	TagArrayRef               Tag = 209
	TagFuncExpr               Tag = 210
	TagOpExpr                 Tag = 211
	TagDistinctExpr           Tag = 212
	TagScalarArrayOpExpr      Tag = 213
	TagBoolExpr               Tag = 214
	TagSubLink                Tag = 215
	TagSubPlan                Tag = 216
	TagFieldSelect            Tag = 217
	TagFieldStore             Tag = 218
	TagRelabelType            Tag = 219
	TagConvertRowtypeExpr     Tag = 220
	TagCaseExpr               Tag = 221
	TagCaseWhen               Tag = 222
	TagCaseTestExpr           Tag = 223
	TagArrayExpr              Tag = 224
	TagRowExpr                Tag = 225
	TagRowCompareExpr         Tag = 226
	TagCoalesceExpr           Tag = 227
	TagMinMaxExpr             Tag = 228
	TagNullIfExpr             Tag = 229
	TagNullTest               Tag = 230
	TagBooleanTest            Tag = 231
	TagCoerceToDomain         Tag = 232
	TagCoerceToDomainValue    Tag = 233
	TagSetToDefault           Tag = 234
	TagCurrentOfExpr          Tag = 235
	TagTargetEntry            Tag = 236
	TagRangeTblRef            Tag = 237
	TagJoinExpr               Tag = 238
	TagFromExpr               Tag = 239
	TagGroupingFunc           Tag = 240
	TagGrouping               Tag = 241
	TagGroupId                Tag = 242
	TagPercentileExpr         Tag = 243
	TagDMLActionExpr          Tag = 244
	TagPartOidExpr            Tag = 245
	TagPartDefaultExpr        Tag = 246
	TagPartBoundExpr          Tag = 247
	TagPartBoundInclusionExpr Tag = 248
	TagPartBoundOpenExpr      Tag = 249
	TagTableValueExpr         Tag = 250

	// Parse-tree and statement nodes
	TagQuery                 Tag = 300
	TagRangeTblEntry         Tag = 301
	TagAExpr                 Tag = 302
	TagColumnRef             Tag = 303
	TagParamRef              Tag = 304
	TagAConst                Tag = 305
	TagAIndices              Tag = 306
	TagAIndirection          Tag = 307
	TagResTarget             Tag = 308
	TagConstraint            Tag = 309
	TagFkConstraint          Tag = 310
	TagFuncCall              Tag = 311
	TagDefElem               Tag = 312
	TagTypeName              Tag = 313
	TagTypeCast              Tag = 314
	TagColumnDef             Tag = 315
	TagIndexElem             Tag = 316
	TagSortClause            Tag = 317
	TagGroupClause           Tag = 318
	TagGroupingClause        Tag = 319
	TagWindowSpec            Tag = 320
	TagWindowFrame           Tag = 321
	TagWindowFrameEdge       Tag = 322
	TagRowMarkClause         Tag = 323
	TagWithClause            Tag = 324
	TagCommonTableExpr       Tag = 325
	TagSetOperationStmt      Tag = 326
	TagCreateStmt            Tag = 327
	TagInheritPartitionCmd   Tag = 328
	TagAlterPartitionCmd     Tag = 329
	TagAlterPartitionId      Tag = 330
	TagPartitionBy           Tag = 331
	TagPartitionElem         Tag = 332
	TagPartitionRangeItem    Tag = 333
	TagPartitionBoundSpec    Tag = 334
	TagPartitionSpec         Tag = 335
	TagPartitionValuesSpec   Tag = 336
	TagPartition             Tag = 337
	TagPartitionRule         Tag = 338
	TagPartitionNode         Tag = 339
	TagPgPartRule            Tag = 340
	TagIndexStmt             Tag = 341
	TagReindexStmt           Tag = 342
	TagDropStmt              Tag = 343
	TagTruncateStmt          Tag = 344
	TagAlterTableStmt        Tag = 345
	TagAlterTableCmd         Tag = 346
	TagCreateSeqStmt         Tag = 347
	TagAlterSeqStmt          Tag = 348
	TagCreatedbStmt          Tag = 349
	TagDropdbStmt            Tag = 350
	TagCreateDomainStmt      Tag = 351
	TagAlterDomainStmt       Tag = 352
	TagCreateFunctionStmt    Tag = 353
	TagFunctionParameter     Tag = 354
	TagRemoveFuncStmt        Tag = 355
	TagAlterFunctionStmt     Tag = 356
	TagDefineStmt            Tag = 357
	TagCompositeTypeStmt     Tag = 358
	TagViewStmt              Tag = 359
	TagRuleStmt              Tag = 360
	TagTransactionStmt       Tag = 361
	TagDeclareCursorStmt     Tag = 362
	TagNotifyStmt            Tag = 363
	TagCopyStmt              Tag = 364
	TagSingleRowErrorDesc    Tag = 365
	TagVacuumStmt            Tag = 366
	TagClusterStmt           Tag = 367
	TagLockStmt              Tag = 368
	TagRenameStmt            Tag = 369
	TagGrantStmt             Tag = 370
	TagPrivGrantee           Tag = 371
	TagFuncWithArgs          Tag = 372
	TagGrantRoleStmt         Tag = 373
	TagCreateSchemaStmt      Tag = 374
	TagCreateRoleStmt        Tag = 375
	TagDropRoleStmt          Tag = 376
	TagAlterRoleStmt         Tag = 377
	TagAlterRoleSetStmt      Tag = 378
	TagAlterObjectSchemaStmt Tag = 379
	TagAlterOwnerStmt        Tag = 380
	TagTupleDescNode         Tag = 381
	TagSegfileMapNode        Tag = 382
)

// allTags lists every defined tag for uniqueness verification in tests.
var allTags = []Tag{
	TagNull,
	TagList, TagIntList, TagOidList,
	TagInteger, TagFloat, TagString, TagBitString, TagNullValue,

	TagPlannedStmt, TagResult, TagRepeat, TagAppend, TagSequence,
	TagBitmapAnd, TagBitmapOr, TagSeqScan, TagAppendOnlyScan, TagAOCSScan,
	TagTableScan, TagDynamicTableScan, TagExternalScan, TagIndexScan,
	TagDynamicIndexScan, TagBitmapIndexScan, TagBitmapHeapScan,
	TagBitmapAppendOnlyScan, TagBitmapTableScan, TagTidScan, TagSubqueryScan,
	TagFunctionScan, TagValuesScan, TagTableFunctionScan, TagNestLoop,
	TagMergeJoin, TagHashJoin, TagAgg, TagWindowKey, TagWindow, TagMaterial,
	TagShareInputScan, TagSort, TagUnique, TagSetOp, TagLimit, TagHash,
	TagMotion, TagDML, TagSplitUpdate, TagRowTrigger, TagAssertOp,
	TagPartitionSelector, TagFlow, TagSlice, TagSliceTable, TagCdbProcess,

	TagAlias, TagRangeVar, TagIntoClause, TagVar, TagConst, TagParam,
	TagAggref, TagAggOrder, TagWindowRef, TagArrayRef, TagFuncExpr,
	TagOpExpr, TagDistinctExpr, TagScalarArrayOpExpr, TagBoolExpr,
	TagSubLink, TagSubPlan, TagFieldSelect, TagFieldStore, TagRelabelType,
	TagConvertRowtypeExpr, TagCaseExpr, TagCaseWhen, TagCaseTestExpr,
	TagArrayExpr, TagRowExpr, TagRowCompareExpr, TagCoalesceExpr,
	TagMinMaxExpr, TagNullIfExpr, TagNullTest, TagBooleanTest,
	TagCoerceToDomain, TagCoerceToDomainValue, TagSetToDefault,
	TagCurrentOfExpr, TagTargetEntry, TagRangeTblRef, TagJoinExpr,
	TagFromExpr, TagGroupingFunc, TagGrouping, TagGroupId, TagPercentileExpr,
	TagDMLActionExpr, TagPartOidExpr, TagPartDefaultExpr, TagPartBoundExpr,
	TagPartBoundInclusionExpr, TagPartBoundOpenExpr, TagTableValueExpr,

	TagQuery, TagRangeTblEntry, TagAExpr, TagColumnRef, TagParamRef,
	TagAConst, TagAIndices, TagAIndirection, TagResTarget, TagConstraint,
	TagFkConstraint, TagFuncCall, TagDefElem, TagTypeName, TagTypeCast,
	TagColumnDef, TagIndexElem, TagSortClause, TagGroupClause,
	TagGroupingClause, TagWindowSpec, TagWindowFrame, TagWindowFrameEdge,
	TagRowMarkClause, TagWithClause, TagCommonTableExpr, TagSetOperationStmt,
	TagCreateStmt, TagInheritPartitionCmd, TagAlterPartitionCmd,
	TagAlterPartitionId, TagPartitionBy, TagPartitionElem,
	TagPartitionRangeItem, TagPartitionBoundSpec, TagPartitionSpec,
	TagPartitionValuesSpec, TagPartition, TagPartitionRule, TagPartitionNode,
	TagPgPartRule, TagIndexStmt, TagReindexStmt, TagDropStmt,
	TagTruncateStmt, TagAlterTableStmt, TagAlterTableCmd, TagCreateSeqStmt,
	TagAlterSeqStmt, TagCreatedbStmt, TagDropdbStmt, TagCreateDomainStmt,
	TagAlterDomainStmt, TagCreateFunctionStmt, TagFunctionParameter,
	TagRemoveFuncStmt, TagAlterFunctionStmt, TagDefineStmt,
	TagCompositeTypeStmt, TagViewStmt, TagRuleStmt, TagTransactionStmt,
	TagDeclareCursorStmt, TagNotifyStmt, TagCopyStmt, TagSingleRowErrorDesc,
	TagVacuumStmt, TagClusterStmt, TagLockStmt, TagRenameStmt, TagGrantStmt,
	TagPrivGrantee, TagFuncWithArgs, TagGrantRoleStmt, TagCreateSchemaStmt,
	TagCreateRoleStmt, TagDropRoleStmt, TagAlterRoleStmt, TagAlterRoleSetStmt,
	TagAlterObjectSchemaStmt, TagAlterOwnerStmt, TagTupleDescNode,
	TagSegfileMapNode,
}
