package repository

import (
	"fmt"
	"sort"
	"strings"
)

var (
	BillFilterKeys     = []string{"owner_id", "status", "customer_name", "bill_number"}
	ShipmentFilterKeys = []string{"owner_id", "bill_id"}
	PaymentFilterKeys  = []string{"owner_id", "bill_id"}
)

// checkFilters rejects keys that are not indexed for the collection.
func checkFilters(collection string, filters map[string]interface{}, allowed []string) error {
	for key := range filters {
		ok := false
		for _, a := range allowed {
			if a == key {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: unsupported filter %q", collection, key)
		}
	}
	return nil
}

// buildWhere turns equality filters into a postgres WHERE clause with
// positional args. Keys are sorted so the statement text is stable.
func buildWhere(collection string, filters map[string]interface{}, allowed []string) (string, []interface{}, error) {
	if err := checkFilters(collection, filters, allowed); err != nil {
		return "", nil, err
	}
	if len(filters) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clauses := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys))
	for i, k := range keys {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, filters[k])
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func filterString(filters map[string]interface{}, key string) (string, bool) {
	v, ok := filters[key]
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}
