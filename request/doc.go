// Package request assembles populated request value objects from ambient
// request state and resolves client addresses from proxy-aware headers.
// The ambient state is abstracted behind the Environment interface so the
// helpers stay pure; HTTPEnvironment supplies the production wiring over an
// incoming net/http request.
package request
