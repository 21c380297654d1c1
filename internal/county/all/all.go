// Package all registers every county extractor.
package all

import (
	// extractors register themselves in init
	_ "github.com/law-makers/appraiser/internal/county/collier"
	_ "github.com/law-makers/appraiser/internal/county/lee"
)
