package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// choices lists the accepted values of enumerated keys.
var choices = map[string][]string{
	key.Player:         player.Names,
	key.PlayerServer:   lo.Map(source.Servers, func(s source.Server, _ int) string { return string(s) }),
	key.PlayerCategory: {string(source.Sub), string(source.Dub)},
	key.IconsVariant:   icon.AvailableVariants(),
	key.LogsLevel:      {"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"},
}

// UnknownKeyError is returned for keys that are not registered.
type UnknownKeyError struct {
	Key string
	// Closest is the registered key with the smallest edit distance.
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}

// Parse converts command line values to the type of the default value.
// Enumerated keys only accept their listed values and integers must not be negative.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		value := strings.TrimSpace(raw[0])
		if allowed, ok := choices[f.Key]; ok && !lo.Contains(allowed, value) {
			return nil, fmt.Errorf("%s must be one of %s, got %q", f.Key, strings.Join(allowed, ", "), value)
		}
		return value, nil
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, raw[0])
		}
		if n < 0 {
			return nil, fmt.Errorf("%s cannot be negative", f.Key)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	}

	return nil, fmt.Errorf("%s has an unsupported type %s", f.Key, f.typeName())
}
