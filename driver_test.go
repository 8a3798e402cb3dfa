package ggwin

import (
	"errors"
	"testing"
)

func TestDriverRegistryPriorityOrder(t *testing.T) {
	r := &driverRegistry{}
	r.register("low", 10, func() (Platform, error) { return newFakePlatform(), nil }, nil)
	r.register("high", 100, func() (Platform, error) { return newFakePlatform(), nil }, nil)
	r.register("mid", 50, func() (Platform, error) { return newFakePlatform(), nil }, nil)

	want := []string{"high", "mid", "low"}
	got := r.sortedNames(false)
	if len(got) != len(want) {
		t.Fatalf("sortedNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedNames = %v, want %v", got, want)
		}
	}
}

func TestDriverRegistrySkipsUnavailable(t *testing.T) {
	r := &driverRegistry{}
	r.register("present", 10, func() (Platform, error) { return newFakePlatform(), nil }, nil)
	r.register("absent", 100, func() (Platform, error) { return newFakePlatform(), nil },
		func() bool { return false })

	names := r.sortedNames(true)
	if len(names) != 1 || names[0] != "present" {
		t.Fatalf("sortedNames(onlyAvailable) = %v, want [present]", names)
	}

	p, err := r.newPlatform()
	if err != nil {
		t.Fatalf("newPlatform: %v", err)
	}
	if p == nil {
		t.Fatal("newPlatform returned nil platform")
	}
}

func TestDriverRegistryFallsBackOnFactoryFailure(t *testing.T) {
	r := &driverRegistry{}
	r.register("broken", 100, func() (Platform, error) {
		return nil, errors.New("init failed")
	}, nil)
	fallback := newFakePlatform()
	r.register("working", 10, func() (Platform, error) { return fallback, nil }, nil)

	p, err := r.newPlatform()
	if err != nil {
		t.Fatalf("newPlatform: %v", err)
	}
	if p != fallback {
		t.Error("newPlatform did not fall back to the lower-priority driver")
	}
}

func TestDriverRegistryEmpty(t *testing.T) {
	r := &driverRegistry{}
	if _, err := r.newPlatform(); !errors.Is(err, ErrNoDriver) {
		t.Errorf("newPlatform on empty registry: %v, want ErrNoDriver", err)
	}
}

func TestDriverRegistryByName(t *testing.T) {
	r := &driverRegistry{}
	r.register("offline", 10, func() (Platform, error) { return newFakePlatform(), nil },
		func() bool { return false })

	var notFound *DriverNotFoundError
	if _, err := r.newPlatformByName("nope"); !errors.As(err, &notFound) {
		t.Errorf("newPlatformByName(nope): %v, want DriverNotFoundError", err)
	}

	var unavailable *DriverUnavailableError
	if _, err := r.newPlatformByName("offline"); !errors.As(err, &unavailable) {
		t.Errorf("newPlatformByName(offline): %v, want DriverUnavailableError", err)
	}
}

func TestRegisterDriverReplacesEntry(t *testing.T) {
	r := &driverRegistry{}
	r.register("dup", 10, func() (Platform, error) { return nil, errors.New("old") }, nil)
	replacement := newFakePlatform()
	r.register("dup", 20, func() (Platform, error) { return replacement, nil }, nil)

	p, err := r.newPlatformByName("dup")
	if err != nil {
		t.Fatalf("newPlatformByName: %v", err)
	}
	if p != replacement {
		t.Error("registering the same name did not replace the entry")
	}
}
