//go:build !unix

package cleave

func takeRusage() rusageSnapshot { return rusageSnapshot{} }
