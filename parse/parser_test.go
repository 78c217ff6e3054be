package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalHeader = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('a description'),'2;1');
FILE_NAME('part.stp','2020-01-02T03:04:05',('author'),('org'),'pre','sys','auth');
FILE_SCHEMA(('CONFIG_CONTROL_DESIGN'));
ENDSEC;
`

func wrap(data string) string {
	return minimalHeader + "DATA;\n" + data + "\nENDSEC;\nEND-ISO-10303-21;\n"
}

var ignorePositions = cmpopts.IgnoreUnexported(
	List{}, SimpleItem{}, ComplexItem{}, EntityInstanceReference{}, Auto{}, Omitted{},
	String{}, Integer{}, Real{}, Enumeration{}, EntityInstance{},
)

func parseError(test *testing.T, src string) *Error {
	test.Helper()
	_, err := Text(src)
	require.Error(test, err)
	var perr *Error
	require.ErrorAs(test, err, &perr)
	return perr
}

func TestParseHeader(test *testing.T) {
	file, err := Text(wrap(""))
	require.NoError(test, err)
	require.Len(test, file.Header.Macros, 3)
	assert.Equal(test, "FILE_DESCRIPTION", file.Header.Macros[0].Keyword)
	assert.Equal(test, 2, file.Header.Macros[0].Values.Len())
	assert.Equal(test, "FILE_NAME", file.Header.Macros[1].Keyword)
	assert.Equal(test, 7, file.Header.Macros[1].Values.Len())
	assert.Equal(test, "FILE_SCHEMA", file.Header.Macros[2].Keyword)
	assert.Empty(test, file.Data.Instances)
}

func TestParseSimpleItem(test *testing.T) {
	file, err := Text(wrap(`#7=LINE('',#1,(1.5,2,$),*,.T.,VECTOR('v',#3,4.0));`))
	require.NoError(test, err)
	require.Len(test, file.Data.Instances, 1)
	instance := file.Data.Instances[0]
	assert.Equal(test, 7, instance.ID)

	expected := NewSimpleItem("LINE",
		NewString(""),
		NewReference(1),
		NewList(NewReal(1.5), NewInteger(2), NewOmitted()),
		NewAuto(),
		NewEnumeration("T"),
		NewSimpleItem("VECTOR", NewString("v"), NewReference(3), NewReal(4.0)),
	)
	if diff := cmp.Diff(ItemSyntax(expected), instance.Item, ignorePositions); diff != "" {
		test.Errorf("unexpected syntax (-want +got):\n%s", diff)
	}
}

func TestParseComplexItem(test *testing.T) {
	file, err := Text(wrap(`#1=(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.));`))
	require.NoError(test, err)
	ci, ok := file.Data.Instances[0].Item.(*ComplexItem)
	require.True(test, ok)
	assert.Equal(test, []string{"LENGTH_UNIT", "NAMED_UNIT", "SI_UNIT"}, ci.Keywords())
	assert.Equal(test, 0, ci.Items[0].Parameters.Len())
}

func TestParseEmptyList(test *testing.T) {
	file, err := Text(wrap(`#1=EDGE_LOOP('',());`))
	require.NoError(test, err)
	item := file.Data.Instances[0].Item.(*SimpleItem)
	list, err := ListValue(item.Parameters.Values[1])
	require.NoError(test, err)
	assert.Equal(test, 0, list.Len())
}

func TestParsePositions(test *testing.T) {
	file, err := Text(wrap("#1=A(\n  'x',\n  #2);\n#2=B();"))
	require.NoError(test, err)
	data := strings.Count(minimalHeader, "\n") + 2
	first := file.Data.Instances[0]
	line, column := first.Pos()
	assert.Equal(test, data, line)
	assert.Equal(test, 1, column)
	ref := first.Item.(*SimpleItem).Parameters.Values[1]
	line, column = ref.Pos()
	assert.Equal(test, data+2, line)
	assert.Equal(test, 3, column)
}

func TestParseErrors(test *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"ISO-10303-22;", "Expected ISO-10303-21, found ISO-10303-22"},
		{"ISO-10303-21 HEADER;", "Expected SEMICOLON, found KEYWORD"},
		{wrap("#1=A(1 2);"), "Expected COMMA or CLOSE_PAREN, found INTEGER"},
		{wrap("#1=A(1,);"), "Unexpected CLOSE_PAREN"},
		{wrap("#1=A(@2);"), "Unexpected INSTANCE_VALUE"},
		{wrap("#1=A(#CONST);"), "Unexpected CONSTANT_INSTANCE"},
		{wrap("#1=A()"), "Expected SEMICOLON, found KEYWORD"},
		{wrap("#1=();"), "Expected KEYWORD, found CLOSE_PAREN"},
		{wrap("#1 A();"), "Expected EQUALS, found KEYWORD"},
		{wrap("A();"), "Expected ENTITY_INSTANCE, found KEYWORD"},
		{wrap("#1=1;"), "Expected KEYWORD or OPEN_PAREN, found INTEGER"},
		{wrap("") + "X", "Expected EOF, found KEYWORD"},
		{minimalHeader + "DATA;\n#1=A(", "Unexpected EOF"},
	}
	for _, tt := range tests {
		perr := parseError(test, tt.src)
		assert.Equal(test, tt.message, perr.Message, tt.src)
		assert.Equal(test, SyntaxError, perr.Category, tt.src)
	}
}

func TestParseLexicalErrorsPropagate(test *testing.T) {
	perr := parseError(test, wrap("#1=A('open);"))
	assert.Equal(test, LexicalError, perr.Category)
}

func TestParseRejectsNulCharacters(test *testing.T) {
	perr := parseError(test, wrap("")+"\x00 this is garbage !!!")
	assert.Equal(test, LexicalError, perr.Category)
	assert.Equal(test, 11, perr.Line)

	perr = parseError(test, wrap("#1=CARTESIAN_POINT(\x00'',(0.,0.,0.));"))
	assert.Equal(test, LexicalError, perr.Category)
	assert.Equal(test, `Unexpected character '\x00'`, perr.Message)
}

func TestErrorFormat(test *testing.T) {
	err := Errorf(BindingError, 12, 4, "Unresolved reference #%d", 9)
	assert.Equal(test, "Unresolved reference #9 at [12:4]", err.Error())
	assert.True(test, IsCategory(fmt.Errorf("wrapped: %w", err), BindingError))
	assert.False(test, IsCategory(err, SyntaxError))
}

func TestAnnotate(test *testing.T) {
	src := "line one\nline two\nline three\n"
	err := Errorf(SyntaxError, 2, 6, "Bad thing")
	out := Annotate("dir/file.stp", src, err, RED, 1)
	assert.True(test, strings.HasPrefix(out, "file.stp:2:6: "))
	assert.Contains(test, out, "line one")
	assert.Contains(test, out, "line three")
	assert.Equal(test, "plain", Annotate("", src, fmt.Errorf("plain"), RED, 1))
}

func TestValueAccessors(test *testing.T) {
	s, err := StringValue(NewOmitted())
	require.NoError(test, err)
	assert.Equal(test, "", s)

	s, err = ConcatenatedStringValue(NewStringList("ab", "cd"))
	require.NoError(test, err)
	assert.Equal(test, "abcd", s)

	f, err := RealValue(NewInteger(3))
	require.NoError(test, err)
	assert.Equal(test, 3.0, f)

	_, err = IntegerValue(NewReal(3))
	assert.True(test, IsCategory(err, ValueError))

	b, err := BooleanValue(NewEnumeration("F"))
	require.NoError(test, err)
	assert.False(test, b)
	_, err = BooleanValue(NewEnumeration("U"))
	assert.True(test, IsCategory(err, ValueError))

	err = NewList(NewInteger(1)).AssertCount(2)
	assert.True(test, IsCategory(err, ArityError))
	assert.NoError(test, NewList(NewInteger(1)).AssertCountRange(1, 3))

	assert.True(test, IsAbsent(NewAuto()))
	assert.False(test, IsAbsent(NewString("")))
}
