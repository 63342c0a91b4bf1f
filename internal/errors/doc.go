// Package errors provides the coded errors used across grimoire-api.
//
// Every error carries a Code that maps onto a gRPC status code, a message,
// an optional cause and optional metadata. Wrapping keeps the code of the
// wrapped error so a NotFound from the repository is still a NotFound when it
// reaches the handler.
//
// # Basic Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta(errors.MetaCharacterID, id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to get character")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("characterID", input.CharacterID, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// ToGRPCError turns an Error into a status whose details hold the code and
// metadata as a google.protobuf.Struct; FromGRPCError reverses it, so a
// refused commit still exposes its validation errors to the client.
//
// # Layer Guidelines
//
// Repositories return NotFound, AlreadyExists and Aborted with the IDs involved.
// The orchestrator validates input (InvalidArgument) and build state
// (FailedPrecondition) and wraps everything else with context.
// Handlers only convert.
package errors
