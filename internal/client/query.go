package client

import (
	"net/url"
	"strconv"
)

// Query helpers: absent/zero filters are omitted from the query string rather
// than sent empty.

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIntIfPresent(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setInt64IfPresent(q url.Values, key string, value int64) {
	if value > 0 {
		q.Set(key, strconv.FormatInt(value, 10))
	}
}

func setBoolIfTrue(q url.Values, key string, value bool) {
	if value {
		q.Set(key, "true")
	}
}

func setPage(q url.Values, page, perPage int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
}
