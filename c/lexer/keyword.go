package lexer

import "sort"

// Reserved identifies one of the reserved words of C89. The zero value is
// NoKeyword and is carried by every token whose kind is not Keyword.
type Reserved int

const (
	NoKeyword Reserved = iota
	KwAuto
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwRegister
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
)

var keywords = map[string]Reserved{
	"auto":     KwAuto,
	"break":    KwBreak,
	"case":     KwCase,
	"char":     KwChar,
	"const":    KwConst,
	"continue": KwContinue,
	"default":  KwDefault,
	"do":       KwDo,
	"double":   KwDouble,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"float":    KwFloat,
	"for":      KwFor,
	"goto":     KwGoto,
	"if":       KwIf,
	"int":      KwInt,
	"long":     KwLong,
	"register": KwRegister,
	"return":   KwReturn,
	"short":    KwShort,
	"signed":   KwSigned,
	"sizeof":   KwSizeof,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"typedef":  KwTypedef,
	"union":    KwUnion,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"volatile": KwVolatile,
	"while":    KwWhile,
}

var keywordNames = func() map[Reserved]string {
	m := make(map[Reserved]string, len(keywords))
	for name, kw := range keywords {
		m[kw] = name
	}
	return m
}()

// LookupKeyword reports the keyword spelled exactly by s.
func LookupKeyword(s string) (Reserved, bool) {
	kw, ok := keywords[s]
	return kw, ok
}

// Keywords returns every reserved word spelling in alphabetical order.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (k Reserved) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k Reserved) IsTypeSpecifier() bool {
	switch k {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble, KwSigned, KwUnsigned:
		return true
	}
	return false
}

func (k Reserved) IsQualifier() bool {
	return k == KwConst || k == KwVolatile
}

func (k Reserved) IsStorageClass() bool {
	switch k {
	case KwAuto, KwRegister, KwStatic, KwExtern, KwTypedef:
		return true
	}
	return false
}
