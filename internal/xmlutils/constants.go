package xmlutils

import (
	"fmt"
	"sort"
)

// DatePath is a named XPath query for the dates of a known document type,
// together with the separator those dates use.
type DatePath struct {
	XPath     string
	Separator string
}

// ISO 20022 statements (camt.052/053/054) carry ISO dates: YYYY-MM-DD.
var presets = map[string]DatePath{
	"booking":  {XPath: "//Ntry/BookgDt/Dt", Separator: "-"},
	"value":    {XPath: "//Ntry/ValDt/Dt", Separator: "-"},
	"from":     {XPath: "//Stmt/FrToDt/FrDtTm", Separator: "-"},
	"to":       {XPath: "//Stmt/FrToDt/ToDtTm", Separator: "-"},
	"interest": {XPath: "//Ntry/NtryDtls/TxDtls/RltdDts/IntrBkSttlmDt", Separator: "-"},
}

// Preset returns the named DatePath.
func Preset(name string) (DatePath, error) {
	p, ok := presets[name]
	if !ok {
		return DatePath{}, fmt.Errorf("unknown XPath preset %q (known: %v)", name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
