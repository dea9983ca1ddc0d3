package badger

import (
	"fmt"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// Key prefixes for different data types
const (
	etfRecordPrefix = "etfrec"
	etfISINPrefix   = "etfisin"
)

// makeETFKey generates a key for an ETF record by ID.
func makeETFKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", etfRecordPrefix, id))
}

// makeISINKey generates a key for the ISIN index.
func makeISINKey(isin string) []byte {
	return []byte(etfISINPrefix + ":" + isin)
}
