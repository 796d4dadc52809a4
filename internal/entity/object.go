package entity

// ObjectBaseKind discriminates the four ways an ObjectName can be backed
// (§3 "ObjectBase is a derived view").
type ObjectBaseKind int

const (
	OBObject ObjectBaseKind = iota
	OBObjectAlias
	OBDeferredConstant
	OBExternalName
)

// ObjectBase is the derived (what-kind-of-object, backing handle(s)) view of
// §3. For OBObject and OBDeferredConstant, Handle names the entity itself;
// for OBObjectAlias, Handle is the alias entity and BaseHandle is the
// aliased object; for OBExternalName there is no backing entity at all, only
// a carried class.
type ObjectBase struct {
	Kind       ObjectBaseKind
	Handle     Handle
	BaseHandle Handle
	ExtClass   Class
}

// ObjectBaseForObject builds the Object(h) variant.
func ObjectBaseForObject(h Handle) ObjectBase {
	return ObjectBase{Kind: OBObject, Handle: h}
}

// ObjectBaseForAlias builds the ObjectAlias(base_h, alias_h) variant.
func ObjectBaseForAlias(baseHandle, aliasHandle Handle) ObjectBase {
	return ObjectBase{Kind: OBObjectAlias, Handle: aliasHandle, BaseHandle: baseHandle}
}

// ObjectBaseForDeferredConstant builds the DeferredConstant(h) variant.
func ObjectBaseForDeferredConstant(h Handle) ObjectBase {
	return ObjectBase{Kind: OBDeferredConstant, Handle: h}
}

// ObjectBaseForExternalName builds the ExternalName(class) variant.
func ObjectBaseForExternalName(class Class) ObjectBase {
	return ObjectBase{Kind: OBExternalName, ExtClass: class}
}

// Mode returns the mode of the underlying object entity; nil for
// DeferredConstant and ExternalName, exactly as §4.A specifies.
func (ob ObjectBase) Mode(a *Arena) *Mode {
	switch ob.Kind {
	case OBObject:
		return a.Get(ob.Handle).(Object).Mode
	case OBObjectAlias:
		return a.Get(ob.BaseHandle).(Object).Mode
	default:
		return nil
	}
}

// Class returns the class; ExternalName carries its class directly, per
// §4.A.
func (ob ObjectBase) Class(a *Arena) Class {
	switch ob.Kind {
	case OBObject:
		return a.Get(ob.Handle).(Object).Class
	case OBObjectAlias:
		return a.Get(ob.BaseHandle).(Object).Class
	case OBDeferredConstant:
		return Constant
	case OBExternalName:
		return ob.ExtClass
	default:
		return Constant
	}
}

// ObjectName is {base: ObjectBase, type_mark: Type?} from §3. A nil
// TypeMark means "derive from the backing Object's declared subtype" — only
// resolvable when Base.Kind is OBObject or OBObjectAlias (see
// EffectiveType).
type ObjectName struct {
	Base     ObjectBase
	TypeMark Type // nil for a bare object or untyped alias; always set after a suffix application (invariant I2)
}

// EffectiveType returns TypeMark if present, otherwise the declared subtype
// of the backing Object (§3: "If type_mark is absent, base must be
// Object(h) and the effective type is h.subtype.type_mark"). Every
// classified kind other than a plain Object or an untyped ObjectAlias sets
// TypeMark explicitly at classification time, so those are the only two
// Base.Kind values this ever needs to resolve.
func (on ObjectName) EffectiveType(a *Arena) Type {
	if on.TypeMark != nil {
		return on.TypeMark
	}
	switch on.Base.Kind {
	case OBObject:
		return a.Get(on.Base.Handle).(Object).Subtype
	case OBObjectAlias:
		return a.Get(on.Base.BaseHandle).(Object).Subtype
	default:
		return nil
	}
}

// WithTypeMark returns a copy of on with TypeMark set to t — the suffix
// applier's way of producing the authoritative type_mark required by
// invariant I2 after any suffix application.
func (on ObjectName) WithTypeMark(t Type) ObjectName {
	on.TypeMark = t
	return on
}
