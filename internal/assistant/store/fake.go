package store

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fake is an in-memory Store for tests. It evaluates the filter operators the
// handlers actually use: field equality, $or, $regex with the "i" option and
// $gte/$lte date ranges.
type Fake struct {
	mu      sync.Mutex
	docs    map[string][]bson.M
	err     error
	Queries int
}

func NewFake() *Fake {
	return &Fake{docs: make(map[string][]bson.M)}
}

// Add stores documents in a collection. Typed records are converted through
// bson so matching sees the same shapes the real driver would.
func (f *Fake) Add(collection string, docs ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			panic(fmt.Sprintf("fake store: marshal %s doc: %v", collection, err))
		}
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("fake store: unmarshal %s doc: %v", collection, err))
		}
		f.docs[collection] = append(f.docs[collection], m)
	}
}

// FailWith makes every subsequent call return err.
func (f *Fake) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *Fake) Find(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	matched, err := f.match(collection, filter)
	if err != nil {
		return err
	}
	return decodeAll(matched, out)
}

func (f *Fake) FindOne(ctx context.Context, collection string, filter interface{}, out interface{}) (bool, error) {
	matched, err := f.match(collection, filter)
	if err != nil {
		return false, err
	}
	if len(matched) == 0 {
		return false, nil
	}
	raw, err := bson.Marshal(matched[0])
	if err != nil {
		return false, err
	}
	return true, bson.Unmarshal(raw, out)
}

func (f *Fake) FindRaw(ctx context.Context, collection string, filter interface{}) ([]map[string]interface{}, error) {
	matched, err := f.match(collection, filter)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(matched))
	for _, m := range matched {
		out = append(out, map[string]interface{}(m))
	}
	return out, nil
}

func (f *Fake) match(collection string, filter interface{}) ([]bson.M, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries++
	if f.err != nil {
		return nil, f.err
	}

	cond, err := toBsonM(filter)
	if err != nil {
		return nil, err
	}

	var matched []bson.M
	for _, doc := range f.docs[collection] {
		if matchesFilter(doc, cond) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func toBsonM(filter interface{}) (bson.M, error) {
	switch v := filter.(type) {
	case bson.M:
		return v, nil
	case map[string]interface{}:
		return bson.M(v), nil
	default:
		return nil, fmt.Errorf("fake store: unsupported filter type %T", filter)
	}
}

func matchesFilter(doc, cond bson.M) bool {
	for key, want := range cond {
		if key == "$or" {
			if !matchesOr(doc, want) {
				return false
			}
			continue
		}
		if !matchesField(doc[key], want) {
			return false
		}
	}
	return true
}

func matchesOr(doc bson.M, want interface{}) bool {
	branches := reflect.ValueOf(want)
	if branches.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < branches.Len(); i++ {
		branch, err := toBsonM(branches.Index(i).Interface())
		if err != nil {
			continue
		}
		if matchesFilter(doc, branch) {
			return true
		}
	}
	return false
}

func matchesField(have, want interface{}) bool {
	ops, err := toBsonM(want)
	if err == nil && hasOperator(ops) {
		return matchesOps(have, ops)
	}
	return equalValues(have, want)
}

func hasOperator(m bson.M) bool {
	for k := range m {
		if strings.HasPrefix(k, "$") {
			return true
		}
	}
	return false
}

func matchesOps(have interface{}, ops bson.M) bool {
	if pattern, ok := ops["$regex"]; ok {
		expr := fmt.Sprintf("%v", pattern)
		if opts, ok := ops["$options"]; ok && strings.Contains(fmt.Sprintf("%v", opts), "i") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return false
		}
		s, ok := have.(string)
		return ok && re.MatchString(s)
	}

	if gte, ok := ops["$gte"]; ok {
		ht, hok := asTime(have)
		wt, wok := asTime(gte)
		if !hok || !wok || ht.Before(wt) {
			return false
		}
	}
	if lte, ok := ops["$lte"]; ok {
		ht, hok := asTime(have)
		wt, wok := asTime(lte)
		if !hok || !wok || ht.After(wt) {
			return false
		}
	}
	return true
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	default:
		return time.Time{}, false
	}
}

func equalValues(have, want interface{}) bool {
	if ht, ok := asTime(have); ok {
		if wt, ok := asTime(want); ok {
			return ht.Equal(wt)
		}
	}
	return reflect.DeepEqual(have, want) || fmt.Sprintf("%v", have) == fmt.Sprintf("%v", want)
}

func decodeAll(docs []bson.M, out interface{}) error {
	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}
