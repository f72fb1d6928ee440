// Package docker builds and executes invocations of the docker CLI (or any
// drop-in replacement that speaks the same command-line contract).
//
// Callers construct a command through a typed builder, optionally add
// unmodeled flags through the escape hatch, and execute it as a child
// process with captured output:
//
//	client := docker.New()
//	out, err := client.Build(".").
//		WithTag("app:latest").
//		Run(ctx)
//
// Every builder satisfies the Command interface, so the ~80 docker
// subcommands can be driven uniformly. Arguments are always assembled in the
// same order: subcommand token(s) first, the builder's own flags and options
// next, escape-hatch arguments after those, and positional operands last.
//
// Failures surface through a small closed set of error types: SpawnError,
// CommandError, TimeoutError, ParseError, and ConfigError. A non-zero exit
// is reported as a *CommandError carrying the full invocation and captured
// output; Output values are only returned for successful runs. The package
// never retries.
package docker
