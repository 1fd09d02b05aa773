package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Center-level policies (domain: center:*)
	centerPolicies := []PermissionPolicy{
		// CenterAdmin: full control within the center
		{RoleCenterAdmin, WildcardDomain, ResourceCenter, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceTherapist, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceRoom, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceEnrollment, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceTherapySession, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceSchedule, ActionExecute, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceRescheduleBatch, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceFreezeWindow, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
		{RoleCenterAdmin, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},

		// Coordinator: runs the schedule but cannot manage the center itself
		{RoleCenterCoordinator, WildcardDomain, ResourceEnrollment, ActionManage, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceTherapySession, ActionManage, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceSchedule, ActionExecute, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceRescheduleBatch, ActionManage, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceFreezeWindow, ActionManage, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceTherapist, ActionRead, EffectAllow},
		{RoleCenterCoordinator, WildcardDomain, ResourceRoom, ActionRead, EffectAllow},

		// Therapist: own calendar and sessions, read-only on the rest
		{RoleCenterTherapist, WildcardDomain, ResourceTherapySession, ActionRead, EffectAllow},
		{RoleCenterTherapist, WildcardDomain, ResourceTherapySession, ActionUpdate, EffectAllow},
		{RoleCenterTherapist, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleCenterTherapist, WildcardDomain, ResourceEnrollment, ActionRead, EffectAllow},
		{RoleCenterTherapist, WildcardDomain, ResourceNotification, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, centerPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignCenterRole assigns a center role to a user for a specific center.
// Valid roles: RoleCenterAdmin, RoleCenterCoordinator, RoleCenterTherapist
func AssignCenterRole(ctx context.Context, auth IAuthorization, userID, centerID string, role Role) error {
	switch role {
	case RoleCenterAdmin, RoleCenterCoordinator, RoleCenterTherapist:
		// valid center roles
	default:
		return ErrInvalidArgs
	}

	domain := CenterDomain(centerID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveCenterRole removes a center role from a user for a specific center.
func RemoveCenterRole(ctx context.Context, auth IAuthorization, userID, centerID string, role Role) error {
	domain := CenterDomain(centerID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetCenterRoles returns all roles a user has in a specific center.
func GetCenterRoles(ctx context.Context, auth IAuthorization, userID, centerID string) ([]Role, error) {
	domain := CenterDomain(centerID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RolePlatformSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RolePlatformSuperAdmin:
		// superadmin is valid but should be assigned with caution
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
