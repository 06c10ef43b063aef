package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// tokenPrefix versions the cursor format so old tokens fail loudly.
const tokenPrefix = "id:"

// EncodeIDToken creates an opaque cursor pointing after the given row ID.
// Listings ordered by ascending ID resume with "id > lastID".
func EncodeIDToken(lastID int64) string {
	return base64.URLEncoding.EncodeToString([]byte(tokenPrefix + strconv.FormatInt(lastID, 10)))
}

// DecodeIDToken parses a cursor produced by EncodeIDToken.
func DecodeIDToken(token string) (int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	raw, ok := strings.CutPrefix(string(decodedBytes), tokenPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid pagination token format (prefix)")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid pagination token format (id parse)")
	}
	return id, nil
}

// NextToken returns the cursor for the page after one that returned count rows
// ending at lastID, or nil when the page was not full.
func NextToken(count, limit int, lastID int64) *string {
	if limit <= 0 || count < limit {
		return nil
	}
	token := EncodeIDToken(lastID)
	return &token
}
