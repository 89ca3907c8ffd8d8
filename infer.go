//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the type-inference layer mapping a requested value type
// to option defaults — bool/Cmd/Pos/Main/Any/scalar/Option<T>/Vec<T> are
// each reproduced here as a free function returning a plain
// [InferDefaults] value, matching this package's preference (see
// style.go, action.go) for tagged data over behavior-laden interfaces
// wherever flagparser or the wider example pack show a plain-struct
// idiom.
//

package optparse

// InferDefaults is what the type-inference layer yields for a requested
// value type: defaults for action, force, styles, index, and the
// matching-mask flags a [Ctor] seeds onto a fresh [*Option].
type InferDefaults struct {
	Action      Action
	Force       bool
	Styles      Style
	Index       Index
	IgnoreName  bool
	IgnoreAlias bool
	IgnoreIndex bool
}

// InferScalar returns the defaults for a plain scalar numeric/string
// value type: Action=App, force=false, styles={Argument}.
func InferScalar() InferDefaults {
	return InferDefaults{Action: ActionApp, Styles: StyleArgument}
}

// InferBool returns the defaults for bool: Action=Set, force=false,
// styles={Combined, Boolean}.
func InferBool() InferDefaults {
	return InferDefaults{Action: ActionSet, Styles: StyleCombined | StyleBoolean}
}

// InferCmd returns the defaults for the Cmd marker: Action=Set,
// force=true, index=Forward(1), styles={Cmd}, ignore_index=false.
func InferCmd() InferDefaults {
	return InferDefaults{Action: ActionSet, Force: true, Styles: StyleCmd, Index: ForwardIndex(1)}
}

// InferPos returns the defaults for the Pos<T> marker: styles={Pos},
// ignore_name=true, ignore_alias=true, ignore_index=false.
func InferPos() InferDefaults {
	return InferDefaults{Action: ActionApp, Styles: StylePos, IgnoreName: true, IgnoreAlias: true}
}

// InferMain returns the defaults for the Main marker: styles={Main},
// index=AnyWhere, ignore_name/alias=true, Action=Null.
func InferMain() InferDefaults {
	return InferDefaults{
		Action: ActionNull, Styles: StyleMain, Index: AnyWhereIndex(),
		IgnoreName: true, IgnoreAlias: true,
	}
}

// InferAny returns the defaults for the Any marker: styles=all,
// Action=Null, ignore_index=false.
func InferAny() InferDefaults {
	return InferDefaults{Action: ActionNull, Styles: StyleAll}
}

// InferOptional relaxes base's Force to false, modeling Option<T>
// wrapping T.
func InferOptional(base InferDefaults) InferDefaults {
	base.Force = false
	return base
}

// InferRepeated sets base's Action to App, modeling Vec<T> wrapping
// element inference.
func InferRepeated(base InferDefaults) InferDefaults {
	base.Action = ActionApp
	return base
}
