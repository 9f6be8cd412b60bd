//go:build fixdebug

package fixutil

const debugAsserts = true
