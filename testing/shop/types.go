// Package shop holds the records the generated codec in shop_shapejson.go is built from.
// They cover every field shape the generator supports.
package shop

import (
	"net/netip"
	"time"
)

//go:generate go run ../../shapejsonc --config shapejson.yaml

// Color is stored as its ordinal.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Mood is a named string.
type Mood string

// Celsius is a named float.
type Celsius float64

// Simple is the smallest record with a collection.
type Simple struct {
	Id   int
	Tags []string
}

// User is a customer. Version is assigned by the store and never read from input.
type User struct {
	Id        int64
	FirstName string
	Tags      []string
	Home      *Address `json:"home"`
	Work      *Address
	Avatar    []byte
	Favorite  Color
	Mood      Mood
	Version   int `json:",readonly"`
}

// Address is where a User can be found.
type Address struct {
	Street  string
	City    string
	Aliases []string
}

// Reading is a sensor sample made of leaf types and fixed size values.
type Reading struct {
	Temp     Celsius
	Taken    time.Time
	Every    time.Duration
	Source   netip.Addr
	Ratio    float32
	Active   bool
	Optional *int
	Window   [3]uint16
}

// Keys has one map for every kind of key.
type Keys struct {
	ByString   map[string]int
	ByInt      map[int64]string
	ByUint     map[uint8]bool
	ByFloat    map[float64]string
	ByBool     map[bool]int
	ByColor    map[Color]*Address
	ByTime     map[time.Time]string
	ByDuration map[time.Duration]int
	ByAddr     map[netip.Addr]string
}
