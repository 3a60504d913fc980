package roletest

import (
	"fmt"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/roletest/assert"
)

func TestRoleRecordsCalls(t *testing.T) {
	fakes, journal := Roles("A", "B")
	a, b := fakes[0], fakes[1]

	addr, err := a.NewMultisigAddress("desc", []quorum.Role{b}, 1)
	assert.Nil(t, err)
	assert.Equal(t, NameAddress("A"), addr)

	_, err = b.NewMultisigAddress("desc", []quorum.Role{a}, 1)
	assert.Nil(t, err)

	calls := a.Calls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "desc", calls[0].Description)
	assert.Equal(t, []string{"B"}, calls[0].OtherNames())
	assert.Equal(t, 1, calls[0].RequiredKeyNum)
	assert.Equal(t, []string{"A", "B"}, journal.Names())
}

func TestRoleResultsAndFailures(t *testing.T) {
	myErr := fmt.Errorf("registration failed")
	first := quorum.NewCondition("foo", "bar", []byte{1}).Address()

	r := &Role{
		RoleName: "A",
		Address:  NameAddress("A"),
		Results:  []quorum.Address{first},
		Err:      myErr,
		FailOn:   2,
	}

	addr, err := r.NewMultisigAddress("d", nil, 1)
	assert.Nil(t, err)
	assert.Equal(t, first, addr)

	_, err = r.NewMultisigAddress("d", nil, 1)
	if err != myErr {
		t.Fatalf("want %v, got %v", myErr, err)
	}

	addr, err = r.NewMultisigAddress("d", nil, 1)
	assert.Nil(t, err)
	assert.Equal(t, NameAddress("A"), addr)
	assert.Equal(t, 3, r.CallCount())
}

func TestRoleCopiesOthers(t *testing.T) {
	fakes, _ := Roles("A", "B", "C")
	others := AsRoles(fakes[1:])

	_, err := fakes[0].NewMultisigAddress("d", others, 2)
	assert.Nil(t, err)

	others[0] = fakes[0]
	assert.Equal(t, []string{"B", "C"}, fakes[0].Calls()[0].OtherNames())
}
