package callcounters

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// This package contains code for call counters.
// Call counters are just benchmarking counters that are intended to be used
// to count how often certain functions are called and display the output
// in an organized fashion.

/*
Usage example:
var _ = CreateHierarchicalCallCounter("FieldOps", "", "")
var _ = CreateHierarchicalCallCounter("MulMontgomery", "Montgomery multiplication", "FieldOps")
func MulMontgomery() {
	Id("MulMontgomery").Increment()
	...
}

Counters can be created in any order; referring to a parent before it is created is fine.
*/

// Call counters are organized in a forest: incrementing a counter also increments all its ancestors.
// A counter without parent is a display root; reports list every root followed by its subtree.
//
// Increments are atomic, since the functions being counted may run concurrently.
// Creating counters is expected to happen during package initialization.

// Id is the string that external callers use to refer to a call counter.
// (This string should contain no whitespace due to limitations of Go's benchmarking framework).
type Id string

// CallCounter is a single counter. Users only ever refer to it via its Id.
type CallCounter struct {
	id          Id
	displayName string // defaults to id if empty
	parent      *CallCounter
	children    []*CallCounter
	count       atomic.Int64
	initialized bool // false for placeholders created by forward references to parents
}

// CCReport is one line of a call counter report.
type CCReport struct {
	Tag   string // display name or id
	Calls int
	Depth int // 0 for display roots
}

var (
	registryMutex sync.RWMutex
	callCounters  = make(map[Id]*CallCounter)
)

// getCounter translates from id to *CallCounter, creating an uninitialized placeholder if needed.
// Needs to be called with registryMutex held for writing.
func getCounter(id Id) *CallCounter {
	if id == "" {
		panic("callcounters: called getCounter with empty id")
	}
	cc, ok := callCounters[id]
	if !ok {
		cc = &CallCounter{id: id}
		callCounters[id] = cc
	}
	return cc
}

// Exists checks whether a call counter with the given id exists and was initialized.
func (id Id) Exists() bool {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	cc, ok := callCounters[id]
	return ok && cc.initialized
}

// CreateHierarchicalCallCounter(id, displayName, parentId) creates a new call counter with the given id and displayName and returns a pointer to it.
// If parentId is not the empty string, it sets that callCounter as its parent.
// The parent need not exist yet.
func CreateHierarchicalCallCounter(id Id, displayName string, parentId Id) *CallCounter {
	if id == "" {
		panic("callcounters: trying to create call counter with empty id")
	}
	registryMutex.Lock()
	defer registryMutex.Unlock()
	cc := getCounter(id)
	if cc.initialized {
		panic("callcounters: call counter " + string(id) + " created twice")
	}
	cc.initialized = true
	cc.displayName = displayName
	if parentId != "" {
		parent := getCounter(parentId)
		for p := parent; p != nil; p = p.parent {
			if p == cc {
				panic("callcounters: cyclic parent relation for " + string(id))
			}
		}
		cc.parent = parent
		parent.children = append(parent.children, cc)
	}
	return cc
}

// Increment adds one to the counter and all of its ancestors.
func (cc *CallCounter) Increment() {
	for c := cc; c != nil; c = c.parent {
		c.count.Add(1)
	}
}

// Increment adds one to the call counter with the given id and all of its ancestors.
// Unknown ids are created on the fly as uninitialized roots.
func (id Id) Increment() {
	registryMutex.RLock()
	cc, ok := callCounters[id]
	registryMutex.RUnlock()
	if !ok {
		registryMutex.Lock()
		cc = getCounter(id)
		registryMutex.Unlock()
	}
	cc.Increment()
}

// Get returns the current value of the counter.
func (cc *CallCounter) Get() int {
	return int(cc.count.Load())
}

// Get returns the current value of the counter with the given id; ok is false if no such counter was created.
func (id Id) Get() (ret int, ok bool) {
	registryMutex.RLock()
	cc, exists := callCounters[id]
	registryMutex.RUnlock()
	if !exists {
		return 0, false
	}
	return cc.Get(), cc.initialized
}

// Reset sets the counter to zero. Ancestors are not modified.
func (cc *CallCounter) Reset() {
	cc.count.Store(0)
}

// Reset sets the counter with the given id to zero.
func (id Id) Reset() {
	registryMutex.RLock()
	cc, ok := callCounters[id]
	registryMutex.RUnlock()
	if ok {
		cc.Reset()
	}
}

// ResetAllCounters sets all counters to zero.
func ResetAllCounters() {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	for _, cc := range callCounters {
		cc.Reset()
	}
}

func (cc *CallCounter) tag(useDisplayName bool) string {
	if useDisplayName && cc.displayName != "" {
		return cc.displayName
	}
	return string(cc.id)
}

// roots returns all parentless counters, sorted by id for a deterministic output.
// Needs registryMutex to be held.
func roots() (ret []*CallCounter) {
	for _, cc := range callCounters {
		if cc.parent == nil {
			ret = append(ret, cc)
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].id < ret[j].id })
	return
}

func reportBelow(cc *CallCounter, depth int, onlyPositive bool, useDisplayName bool, ret []CCReport) []CCReport {
	calls := cc.Get()
	if onlyPositive && calls == 0 {
		return ret
	}
	ret = append(ret, CCReport{Tag: cc.tag(useDisplayName), Calls: calls, Depth: depth})
	for _, child := range cc.children {
		ret = reportBelow(child, depth+1, onlyPositive, useDisplayName, ret)
	}
	return ret
}

// ReportCallCounters returns a depth-first listing of all counters, starting from the display roots.
// If onlyPositive is set, counters with value 0 (and their subtrees) are skipped.
func ReportCallCounters(onlyPositive bool, useDisplayName bool) (ret []CCReport) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	for _, root := range roots() {
		ret = reportBelow(root, 0, onlyPositive, useDisplayName, ret)
	}
	return
}

// GetCallCounterStructureReport returns a human-readable tree of the registered counters, one per line.
func GetCallCounterStructureReport(indent string) string {
	var builder strings.Builder
	for _, entry := range ReportCallCounters(false, true) {
		builder.WriteString(strings.Repeat(indent, entry.Depth))
		builder.WriteString(entry.Tag)
		builder.WriteByte('\n')
	}
	return builder.String()
}
