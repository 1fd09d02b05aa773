package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Center (tenant management)
	ResourceCenter    Resource = "center"
	ResourceTherapist Resource = "therapist"
	ResourceRoom      Resource = "room"

	// Scheduling
	ResourceEnrollment       Resource = "enrollment"
	ResourceAvailabilityRule Resource = "availability_rule"
	ResourceTherapySession   Resource = "therapy_session"
	ResourceSchedule         Resource = "schedule"
	ResourceRescheduleBatch  Resource = "reschedule_batch"
	ResourceFreezeWindow     Resource = "freeze_window"

	// Communication
	ResourceNotification Resource = "notification"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceCenter: {}, ResourceTherapist: {}, ResourceRoom: {},
	ResourceEnrollment: {}, ResourceAvailabilityRule: {}, ResourceTherapySession: {},
	ResourceSchedule: {}, ResourceRescheduleBatch: {}, ResourceFreezeWindow: {},
	ResourceNotification: {},
	ResourceSystem:       {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Center roles (domain = center:<uuid>)
	RoleCenterAdmin       Role = "role:center:admin"
	RoleCenterCoordinator Role = "role:center:coordinator"
	RoleCenterTherapist   Role = "role:center:therapist"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleCenterAdmin:        {},
	RoleCenterCoordinator:  {},
	RoleCenterTherapist:    {},
	RoleUserSelf:           {},
}

// Center member role strings (stored by the admin platform)
const (
	CenterMemberRoleAdmin       = "admin"
	CenterMemberRoleCoordinator = "coordinator"
	CenterMemberRoleTherapist   = "therapist"
)

// CenterMemberRoleToRBACRole maps stored role values to Casbin roles
var CenterMemberRoleToRBACRole = map[string]Role{
	CenterMemberRoleAdmin:       RoleCenterAdmin,
	CenterMemberRoleCoordinator: RoleCenterCoordinator,
	CenterMemberRoleTherapist:   RoleCenterTherapist,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixCenter Domain = "center:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func CenterDomain(centerID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixCenter, centerID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixCenter) && s[:len(DomainPrefixCenter)] == string(DomainPrefixCenter):
		return reUUID.MatchString(s[len(DomainPrefixCenter):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
