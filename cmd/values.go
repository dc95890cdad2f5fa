package cmd

import (
	"fmt"
	"sort"
	"strings"
)

type directorValue int

const (
	directorNone directorValue = iota
	directorRandom
	directorGreedy
)

var directors = map[string]directorValue{
	"none":   directorNone,
	"random": directorRandom,
	"greedy": directorGreedy,
}

func (val *directorValue) String() string {
	return nameOf(directors, *val)
}

func (val *directorValue) Set(value string) error {
	if director, isValid := directors[value]; isValid {
		*val = director
		return nil
	}
	return fmt.Errorf("invalid director %q (choose from %s)", value, namesOf(directors))
}

func (val *directorValue) Type() string {
	return "director"
}

type frontendValue int

const (
	frontendWindow frontendValue = iota
	frontendConsole
)

var frontends = map[string]frontendValue{
	"window":  frontendWindow,
	"console": frontendConsole,
}

func (val *frontendValue) String() string {
	return nameOf(frontends, *val)
}

func (val *frontendValue) Set(value string) error {
	if frontend, isValid := frontends[value]; isValid {
		*val = frontend
		return nil
	}
	return fmt.Errorf("invalid frontend %q (choose from %s)", value, namesOf(frontends))
}

func (val *frontendValue) Type() string {
	return "frontend"
}

func nameOf[V comparable](names map[string]V, value V) string {
	for name, candidate := range names {
		if candidate == value {
			return name
		}
	}
	return fmt.Sprint(value)
}

func namesOf[V any](names map[string]V) string {
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
