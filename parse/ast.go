package parse

type SyntaxType int

const (
	ListSyntax SyntaxType = iota
	SimpleItemSyntax
	ComplexItemSyntax
	ReferenceSyntax
	AutoSyntax
	OmittedSyntax
	StringSyntax
	IntegerSyntax
	RealSyntax
	EnumerationSyntax
)

func (t SyntaxType) String() string {
	switch t {
	case ListSyntax:
		return "list"
	case SimpleItemSyntax:
		return "simple item"
	case ComplexItemSyntax:
		return "complex item"
	case ReferenceSyntax:
		return "entity instance reference"
	case AutoSyntax:
		return "auto"
	case OmittedSyntax:
		return "omitted"
	case StringSyntax:
		return "string"
	case IntegerSyntax:
		return "integer"
	case RealSyntax:
		return "real"
	case EnumerationSyntax:
		return "enumeration"
	}
	return "?"
}

// Syntax is a node of the parsed value tree. Nodes built for writing carry
// no position and report 0:0.
type Syntax interface {
	Positioned
	Type() SyntaxType
}

// ItemSyntax is the right hand side of an entity instance, either a
// *SimpleItem or a *ComplexItem.
type ItemSyntax interface {
	Syntax
	itemSyntax()
}

type node struct {
	Line   int
	Column int
}

func (n node) Pos() (int, int) {
	return n.Line, n.Column
}

func at(tok *Token) node {
	return node{Line: tok.Line, Column: tok.Start}
}

type List struct {
	node
	Values []Syntax
}

func (*List) Type() SyntaxType { return ListSyntax }

// SimpleItem is the KEYWORD(params) form, used both for declarations and for
// items nested inline in a parameter list.
type SimpleItem struct {
	node
	Keyword    string
	Parameters *List
}

func (*SimpleItem) Type() SyntaxType { return SimpleItemSyntax }
func (*SimpleItem) itemSyntax()      {}

type ComplexItem struct {
	node
	Items []*SimpleItem
}

func (*ComplexItem) Type() SyntaxType { return ComplexItemSyntax }
func (*ComplexItem) itemSyntax()      {}

// Keywords lists the keywords of the parts in declaration order.
func (c *ComplexItem) Keywords() []string {
	keywords := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		keywords = append(keywords, item.Keyword)
	}
	return keywords
}

type EntityInstanceReference struct {
	node
	ID int
}

func (*EntityInstanceReference) Type() SyntaxType { return ReferenceSyntax }

// Auto is the `*` marker for an unspecified optional value.
type Auto struct {
	node
}

func (*Auto) Type() SyntaxType { return AutoSyntax }

// Omitted is the `$` marker for a missing value.
type Omitted struct {
	node
}

func (*Omitted) Type() SyntaxType { return OmittedSyntax }

type String struct {
	node
	Value string
}

func (*String) Type() SyntaxType { return StringSyntax }

type Integer struct {
	node
	Value int
}

func (*Integer) Type() SyntaxType { return IntegerSyntax }

type Real struct {
	node
	Value float64
}

func (*Real) Type() SyntaxType { return RealSyntax }

type Enumeration struct {
	node
	Value string
}

func (*Enumeration) Type() SyntaxType { return EnumerationSyntax }

type HeaderMacro struct {
	node
	Keyword string
	Values  *List
}

type HeaderSection struct {
	node
	Macros []*HeaderMacro
}

type EntityInstance struct {
	node
	ID   int
	Item ItemSyntax
}

type DataSection struct {
	node
	Instances []*EntityInstance
}

type FileSyntax struct {
	Header *HeaderSection
	Data   *DataSection
}

func NewList(values ...Syntax) *List {
	if values == nil {
		values = []Syntax{}
	}
	return &List{Values: values}
}

func NewSimpleItem(keyword string, params ...Syntax) *SimpleItem {
	return &SimpleItem{Keyword: keyword, Parameters: NewList(params...)}
}

func NewReference(id int) *EntityInstanceReference {
	return &EntityInstanceReference{ID: id}
}

func NewAuto() *Auto {
	return &Auto{}
}

func NewOmitted() *Omitted {
	return &Omitted{}
}

func NewString(s string) *String {
	return &String{Value: s}
}

func NewInteger(n int) *Integer {
	return &Integer{Value: n}
}

func NewReal(f float64) *Real {
	return &Real{Value: f}
}

func NewEnumeration(s string) *Enumeration {
	return &Enumeration{Value: s}
}

// NewBoolean encodes b as the enumeration .T. or .F.
func NewBoolean(b bool) *Enumeration {
	if b {
		return NewEnumeration("T")
	}
	return NewEnumeration("F")
}

func NewStringList(values ...string) *List {
	list := make([]Syntax, 0, len(values))
	for _, v := range values {
		list = append(list, NewString(v))
	}
	return NewList(list...)
}

func NewRealList(values ...float64) *List {
	list := make([]Syntax, 0, len(values))
	for _, v := range values {
		list = append(list, NewReal(v))
	}
	return NewList(list...)
}

func NewIntegerList(values ...int) *List {
	list := make([]Syntax, 0, len(values))
	for _, v := range values {
		list = append(list, NewInteger(v))
	}
	return NewList(list...)
}
