// Package httpservice exposes a command set over HTTP.
//
// Every command is served at POST /{baseRoute}/{name}. The request body is a
// JSON object holding the command arguments; an empty body means no
// arguments. The correlation id is read from the "correlation_id" query
// parameter, or from the X-Correlation-ID header when the query has none.
//
//	svc := httpservice.New("dummy", set,
//	    httpservice.WithDocument(true),
//	    httpservice.WithRecovery(),
//	)
//	err := svc.ListenAndServe(ctx, ":8080")
//
// # Responses
//
// A nil result is answered with 204 No Content; any other result is encoded as
// JSON with 200 OK. Errors are mapped by kind and written as
// {"error": message, "details": ...}:
//
//	validation failure          400 (details: the violations)
//	argument type mismatch      400
//	malformed request body      400
//	unknown command             404
//	context canceled            503
//	context deadline exceeded   504
//	any other handler error     500
//
// # API document
//
// When enabled with [WithDocument], GET /{baseRoute}/{route} serves the
// document produced by the apidoc package, or a static document supplied with
// [WithStaticDocument] when auto-generation is turned off.
package httpservice
