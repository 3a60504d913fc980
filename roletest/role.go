/*
Package roletest provides test doubles for quorum.Role.

A Role records every call it receives so that tests can assert on the order
and content of the calls an orchestrator makes. Roles created together with
Roles share a Journal, which records the global call order.
*/
package roletest

import (
	"sync"

	"github.com/iov-one/quorum"
)

// Call is a single recorded NewMultisigAddress invocation.
type Call struct {
	Description    string
	Others         []quorum.Role
	RequiredKeyNum int
}

// OtherNames returns the names of the co-signers given in this call.
func (c Call) OtherNames() []string {
	return quorum.Names(c.Others)
}

// Journal collects the names of roles in the order they were called.
type Journal struct {
	mu    sync.Mutex
	names []string
}

func (j *Journal) record(name string) {
	j.mu.Lock()
	j.names = append(j.names, name)
	j.mu.Unlock()
}

// Names returns a copy of all recorded role names.
func (j *Journal) Names() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.names...)
}

// Role is a mock implementing quorum.Role interface.
//
// Each call is recorded. Returned address is taken from Results, indexed by
// the call number, if present, otherwise Address is returned. When FailOn is
// set to a call number (starting with 1), that call returns Err.
type Role struct {
	RoleName string
	Address  quorum.Address
	Results  []quorum.Address

	// Err is returned by the call number FailOn. If FailOn is zero, Err is
	// returned by every call.
	Err    error
	FailOn int

	// Journal, if set, is extended with this role name on every call.
	Journal *Journal

	mu    sync.Mutex
	calls []Call
}

var _ quorum.Role = (*Role)(nil)

func (r *Role) Name() string {
	return r.RoleName
}

func (r *Role) NewMultisigAddress(description string, others []quorum.Role, requiredKeyNum int) (quorum.Address, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{
		Description:    description,
		Others:         append([]quorum.Role(nil), others...),
		RequiredKeyNum: requiredKeyNum,
	})
	n := len(r.calls)
	r.mu.Unlock()

	if r.Journal != nil {
		r.Journal.record(r.RoleName)
	}

	if r.Err != nil && (r.FailOn == 0 || r.FailOn == n) {
		return nil, r.Err
	}
	if n <= len(r.Results) {
		return r.Results[n-1], nil
	}
	return r.Address, nil
}

// Calls returns a copy of all recorded calls.
func (r *Role) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CallCount returns how many times this role was called.
func (r *Role) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Roles returns a fake role for each name. All of them share a single
// journal, returned as well. Each role returns an address derived from its
// name.
func Roles(names ...string) ([]*Role, *Journal) {
	j := &Journal{}
	roles := make([]*Role, len(names))
	for i, n := range names {
		roles[i] = &Role{
			RoleName: n,
			Address:  NameAddress(n),
			Journal:  j,
		}
	}
	return roles, j
}

// AsRoles converts fakes into a slice of the interface type, preserving order.
func AsRoles(fakes []*Role) []quorum.Role {
	roles := make([]quorum.Role, len(fakes))
	for i, f := range fakes {
		roles[i] = f
	}
	return roles
}

// NameAddress returns a deterministic address for given role name.
func NameAddress(name string) quorum.Address {
	return quorum.NewCondition("roletest", "name", []byte(name)).Address()
}
