package imexport

import "testing"

func TestAccessorNames(t *testing.T) {
	tests := []struct {
		name       string
		fieldName  string
		wantGetter string
		wantSetter string
	}{
		{name: "camel case field", fieldName: "importField", wantGetter: "getImportField", wantSetter: "setImportField"},
		{name: "single character", fieldName: "x", wantGetter: "getX", wantSetter: "setX"},
		{name: "already capitalized", fieldName: "Mail", wantGetter: "getMail", wantSetter: "setMail"},
		{name: "digit first", fieldName: "2fa", wantGetter: "get2fa", wantSetter: "set2fa"},
		{name: "non-ascii first rune", fieldName: "ärger", wantGetter: "getÄrger", wantSetter: "setÄrger"},
		{name: "empty name", fieldName: "", wantGetter: "get", wantSetter: "set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldDescriptor{Name: tt.fieldName}
			if got := f.GetterName(); got != tt.wantGetter {
				t.Errorf("GetterName() = %q, want %q", got, tt.wantGetter)
			}
			if got := f.SetterName(); got != tt.wantSetter {
				t.Errorf("SetterName() = %q, want %q", got, tt.wantSetter)
			}
		})
	}
}
