package dummy

import (
	"context"
	"errors"

	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/schema"
)

// BaseRoute is the route the dummy commands are served under.
const BaseRoute = "dummy"

// ErrCommandSetFailure is returned by raise_commandset_error.
var ErrCommandSetFailure = errors.New("dummy error in commandset")

// Schema describes a Dummy argument.
func Schema() *schema.Schema {
	return schema.Object(
		schema.Optional("id", schema.String()),
		schema.Required("key", schema.String()),
		schema.Optional("content", schema.String()),
		schema.Optional("flag", schema.Boolean()),
	)
}

// FilterSchema describes the "filter" argument of get_dummies.
func FilterSchema() *schema.Schema {
	return schema.Object(schema.Optional("key", schema.String()))
}

// PagingSchema describes the "paging" argument of get_dummies.
func PagingSchema() *schema.Schema {
	return schema.Object(
		schema.Optional("skip", schema.Integer()),
		schema.Optional("take", schema.Integer()),
		schema.Optional("total", schema.Boolean()),
	)
}

// NewCommandSet builds the dummy command set on top of ctrl.
func NewCommandSet(ctrl Controller) (*command.Set, error) {
	set := command.NewSet()
	err := set.AddCommands(
		getPageByFilter(ctrl),
		getOneByID(ctrl),
		create(ctrl),
		update(ctrl),
		deleteByID(ctrl),
		createWithoutValidation(),
		raiseCommandSetError(),
		raiseException(ctrl),
		ping(ctrl),
	)
	if err != nil {
		return nil, err
	}
	return set, nil
}

func getPageByFilter(ctrl Controller) *command.Command {
	s := schema.Object(
		schema.Optional("correlation_id", schema.String()),
		schema.Optional("filter", FilterSchema()),
		schema.Optional("paging", PagingSchema()),
	)
	return command.New("get_dummies", s, command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
		filter, _ := args.GetAsMap("filter")
		paging, _ := args.GetAsMap("paging")
		return ctrl.GetPageByFilter(ctx, correlationID, FilterFromParameters(filter), PagingFromParameters(paging))
	}))
}

func getOneByID(ctrl Controller) *command.Command {
	s := schema.Object(schema.Required("dummy_id", schema.String()))
	return command.New("get_dummy_by_id", s, command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
		id, err := args.GetAsString("dummy_id")
		if err != nil {
			return nil, err
		}
		return nilIfAbsent(ctrl.GetOneByID(ctx, correlationID, id))
	}))
}

func create(ctrl Controller) *command.Command {
	s := schema.Object(schema.Required("dummy", Schema()))
	return command.New("create_dummy", s, command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
		d, err := dummyArg(args)
		if err != nil {
			return nil, err
		}
		return ctrl.Create(ctx, correlationID, d)
	}))
}

func update(ctrl Controller) *command.Command {
	s := schema.Object(schema.Required("dummy", Schema()))
	return command.New("update_dummy", s, command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
		d, err := dummyArg(args)
		if err != nil {
			return nil, err
		}
		return nilIfAbsent(ctrl.Update(ctx, correlationID, d))
	}))
}

func deleteByID(ctrl Controller) *command.Command {
	s := schema.Object(schema.Required("dummy_id", schema.String()))
	return command.New("delete_dummy", s, command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
		id, err := args.GetAsString("dummy_id")
		if err != nil {
			return nil, err
		}
		return nilIfAbsent(ctrl.DeleteByID(ctx, correlationID, id))
	}))
}

func createWithoutValidation() *command.Command {
	return command.New("create_dummy_without_validation", nil, command.HandlerFunc(func(context.Context, string, command.Parameters) (any, error) {
		return nil, nil
	}))
}

func raiseCommandSetError() *command.Command {
	s := schema.Object(schema.Required("dummy", Schema()))
	return command.New("raise_commandset_error", s, command.HandlerFunc(func(context.Context, string, command.Parameters) (any, error) {
		return nil, ErrCommandSetFailure
	}))
}

func raiseException(ctrl Controller) *command.Command {
	return command.New("raise_exception", schema.Object(), command.HandlerFunc(func(ctx context.Context, correlationID string, _ command.Parameters) (any, error) {
		return nil, ctrl.RaiseException(ctx, correlationID)
	}))
}

func ping(ctrl Controller) *command.Command {
	return command.New("ping_dummy", nil, command.HandlerFunc(func(ctx context.Context, _ string, _ command.Parameters) (any, error) {
		return ctrl.Ping(ctx)
	}))
}

func dummyArg(args command.Parameters) (Dummy, error) {
	m, err := args.GetAsMap("dummy")
	if err != nil {
		return Dummy{}, err
	}
	return FromParameters(m), nil
}

// nilIfAbsent turns a nil *Dummy into an untyped nil so transports see "no
// result" rather than a typed nil pointer.
func nilIfAbsent(d *Dummy, err error) (any, error) {
	if err != nil || d == nil {
		return nil, err
	}
	return d, nil
}
