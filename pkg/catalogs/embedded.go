package catalogs

import (
	_ "embed"
)

//go:embed operation_types.yaml
var embeddedCatalog []byte

// Default returns the embedded default operation-type catalog covering
// the shortcode vocabulary. Callers with a richer external catalog
// should load their own and pass it in instead.
func Default() *OperationTypes {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		// The embedded catalog is compiled in; failing to parse it is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return c
}
