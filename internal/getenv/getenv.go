/* Copyright (c) 2021 David Bulkow */

package getenv

import (
	"os"
	"strconv"
	"strings"
)

// Env reads variables sharing a common prefix, e.g. DATEUTIL_DEBUG.
type Env struct {
	prefix string
}

func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

func (e *Env) name(suffix string) string {
	if e.prefix == "" {
		return suffix
	}
	return strings.Join([]string{e.prefix, suffix}, "_")
}

func (e *Env) lookup(suffix string) (string, bool) {
	env, ok := os.LookupEnv(e.name(suffix))
	if !ok || env == "" {
		return "", false
	}
	return env, true
}

func (e *Env) Get(suffix, defvalue string) string {
	env, ok := e.lookup(suffix)
	if !ok {
		return defvalue
	}
	return env
}

// GetBool accepts anything strconv.ParseBool does; unparsable values
// fall back to defvalue.
func (e *Env) GetBool(suffix string, defvalue bool) bool {
	env, ok := e.lookup(suffix)
	if !ok {
		return defvalue
	}

	v, err := strconv.ParseBool(strings.TrimSpace(env))
	if err != nil {
		return defvalue
	}
	return v
}
