package errors

// Exit codes for CLI error reporting.
const (
	ExitOK           = 0
	ExitGeneral      = 1
	ExitNotInstalled = 2
	ExitUserDenied   = 3
	ExitNetwork      = 4
	ExitPermissions  = 5
	ExitTransaction  = 6
	ExitConnection   = 7
	ExitSigning      = 8
)

// ExitCode maps an error to a process exit code. Errors outside the
// wallet taxonomy map to the general code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var we *WalletError
	if !As(err, &we) {
		return ExitGeneral
	}

	switch we.Kind {
	case KindNotInstalled:
		return ExitNotInstalled
	case KindUserDenied:
		return ExitUserDenied
	case KindNetworkError:
		return ExitNetwork
	case KindInvalidPermissions:
		return ExitPermissions
	case KindTransactionFailed:
		return ExitTransaction
	case KindConnectionFailed:
		return ExitConnection
	case KindSigningFailed:
		return ExitSigning
	default:
		return ExitGeneral
	}
}
