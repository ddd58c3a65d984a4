package lfactor

import "testing"

func TestSpan(t *testing.T) {
	var null Span
	if !null.IsNull() {
		t.Errorf("Expected zero span to be null")
	}
	s := Span{4, 7}.Extend(Span{10, 12})
	if s.From() != 4 || s.To() != 12 || s.Len() != 8 {
		t.Errorf("Expected (4…12) of length 8, is %v", s)
	}
	if s = s.Extend(Span{5, 6}); s != (Span{4, 12}) {
		t.Errorf("Expected enclosed span to leave (4…12) unchanged, is %v", s)
	}
	if s.String() != "(4…12)" {
		t.Errorf("Expected (4…12), is %s", s.String())
	}
}

func TestSignature(t *testing.T) {
	alt := Symbols("if", "E", "then")
	if Signature(alt) != "ifEthen" {
		t.Errorf("Expected signature ifEthen, is %s", Signature(alt))
	}
	if names := Names(alt); len(names) != 3 || names[2] != "then" {
		t.Errorf("Expected names [if E then], are %v", names)
	}
}
