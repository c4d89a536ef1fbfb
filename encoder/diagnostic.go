package encoder

// Diagnostic reports one recovered InternalDegradation (spec §7): a
// component fell back to a safe default instead of failing the encode.
// Diagnostics never affect the returned CSC list or any serialization —
// they exist purely for observability.
type Diagnostic struct {
	Component string
	Message   string
}

func degraded(component, message string) Diagnostic {
	return Diagnostic{Component: component, Message: message}
}
