//go:build !debug

package material

const debugAssertions = false
