package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys into random readable names. It leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. This is helpful for following a triangle through the
// construction log, where a list of six coordinates is hard to tell apart from
// its neighbors.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the name for key, creating one the first time key is seen. key
// must be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
