package ast

// Tag names the kind of a node.
type Tag string

const (
	StringKeywordTag    Tag = "StringKeyword"
	NumberKeywordTag    Tag = "NumberKeyword"
	BooleanKeywordTag   Tag = "BooleanKeyword"
	VoidKeywordTag      Tag = "VoidKeyword"
	UndefinedKeywordTag Tag = "UndefinedKeyword"
	LiteralTag          Tag = "Literal"
	TypeLiteralTag      Tag = "TypeLiteral"
	TupleTypeTag        Tag = "TupleType"
	UnionTag            Tag = "Union"
	RefinementTag       Tag = "Refinement"
	SuspendTag          Tag = "Suspend"
	TransformationTag   Tag = "Transformation"
	DeclarationTag      Tag = "Declaration"

	// Keywords the schema model can express but that have no JSON Schema
	// counterpart in an API contract.
	AnyKeywordTag     Tag = "AnyKeyword"
	UnknownKeywordTag Tag = "UnknownKeyword"
	NeverKeywordTag   Tag = "NeverKeyword"
	BigIntKeywordTag  Tag = "BigIntKeyword"
	SymbolKeywordTag  Tag = "SymbolKeyword"
	ObjectKeywordTag  Tag = "ObjectKeyword"
)

var allTags = []Tag{
	StringKeywordTag,
	NumberKeywordTag,
	BooleanKeywordTag,
	VoidKeywordTag,
	UndefinedKeywordTag,
	LiteralTag,
	TypeLiteralTag,
	TupleTypeTag,
	UnionTag,
	RefinementTag,
	SuspendTag,
	TransformationTag,
	DeclarationTag,
	AnyKeywordTag,
	UnknownKeywordTag,
	NeverKeywordTag,
	BigIntKeywordTag,
	SymbolKeywordTag,
	ObjectKeywordTag,
}

// Tags returns every node tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// IsKeyword reports whether t is a payload-free keyword tag.
func (t Tag) IsKeyword() bool {
	switch t {
	case StringKeywordTag, NumberKeywordTag, BooleanKeywordTag, VoidKeywordTag,
		UndefinedKeywordTag, AnyKeywordTag, UnknownKeywordTag, NeverKeywordTag,
		BigIntKeywordTag, SymbolKeywordTag, ObjectKeywordTag:
		return true
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}
