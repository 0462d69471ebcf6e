// ABOUTME: Embeds the default prompt catalog into the binary via go:embed
// ABOUTME: Used whenever no catalog override file is configured

package prompts

import _ "embed"

//go:embed templates/catalog.yaml
var embeddedCatalog []byte
