package matcher

import (
	"regexp"
	"sync"
)

// regexCache is the process-wide pattern-string -> compiled-regex cache
// described in spec.md §9. The master pattern is the only one built at
// runtime (it depends on the injected Library's character classes), so
// it is the only one that goes through this cache; the fixed pre-filter
// patterns in prefilter.go are plain package-level vars. sync.Map is the
// standard library's own concurrent read-mostly map — no concurrent-map
// package appears anywhere in the example pack, and this is exactly the
// shape sync.Map exists for, so reaching for a third-party dependency
// here would not be grounded in anything the corpus shows.
var regexCache sync.Map

// compileCached returns the compiled regex for pattern, compiling and
// sharing it across callers if this is the first time pattern has been
// requested.
func compileCached(pattern string) *regexp.Regexp {
	if v, ok := regexCache.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	compiled := regexp.MustCompile(pattern)
	actual, _ := regexCache.LoadOrStore(pattern, compiled)
	return actual.(*regexp.Regexp)
}
