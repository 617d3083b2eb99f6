package sip

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mpyw/privcheck/internal/dylib"
)

// LibSystemPath is the image exporting csr_get_active_config.
//
//nolint:gochecknoglobals // Overridable in tests
var LibSystemPath = "/usr/lib/libSystem.dylib"

// csrAllowUnrestrictedFS is CSR_ALLOW_UNRESTRICTED_FS from xnu's bsd/sys/csr.h.
const csrAllowUnrestrictedFS uint32 = 1 << 1

// FromSystemLibrary asks the kernel for the active SIP configuration through the
// private libSystem export csr_get_active_config.
func FromSystemLibrary() Result {
	result := Indeterminate

	err := dylib.With(LibSystemPath, func(lib *dylib.Library) error {
		sym, err := lib.Lookup("csr_get_active_config")
		if err != nil {
			log.Warn().Err(err).Msg("failed to find csr_get_active_config")

			return err
		}

		config, status := csrGetActiveConfig(sym)
		if status != 0 {
			log.Warn().Int32("status", status).Msg("csr_get_active_config failed")

			return nil
		}

		result = fromConfig(config)

		return nil
	})
	if err != nil && !errors.Is(err, dylib.ErrUnavailable) && !errors.Is(err, dylib.ErrSymbolNotFound) {
		log.Error().Err(err).Msg("system library probe failed")
	}

	return result
}

// fromConfig interprets a csr_config_t bitmask.
func fromConfig(config uint32) Result {
	return protectedIf(config&csrAllowUnrestrictedFS == 0)
}
