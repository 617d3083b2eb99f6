//go:build darwin || freebsd || linux

package sip

import "github.com/ebitengine/purego"

// csrGetActiveConfig calls the function at sym, which must be
//
//	int csr_get_active_config(csr_config_t *config); // csr_config_t is uint32_t
//
// using the platform C calling convention. It returns 0 on success.
func csrGetActiveConfig(sym uintptr) (config uint32, status int32) {
	var fn func(config *uint32) int32

	purego.RegisterFunc(&fn, sym)

	status = fn(&config)

	return config, status
}
