//go:build debug

package material

const debugAssertions = true
