package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathInt parses the named path value as a positive integer id. Ids are INTEGER columns,
// so values beyond 32 bits are rejected here rather than by the store.
func PathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return int(id), nil
}

// PathInts parses several path values, writing a 400 for the first bad one.
// Callers should return immediately when ok is false.
func PathInts(w http.ResponseWriter, r *http.Request, names ...string) (ids []int, ok bool) {
	ids = make([]int, 0, len(names))
	for _, name := range names {
		id, err := PathInt(r, name)
		if err != nil {
			WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
