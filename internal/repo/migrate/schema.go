// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilityRulesColumns holds the columns for the "availability_rules" table.
	AvailabilityRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "end_hour", Type: field.TypeInt8},
		{Name: "end_minute", Type: field.TypeInt8},
		{Name: "valid_from", Type: field.TypeTime},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AvailabilityRulesTable holds the schema information for the "availability_rules" table.
	AvailabilityRulesTable = &schema.Table{
		Name:       "availability_rules",
		Columns:    AvailabilityRulesColumns,
		PrimaryKey: []*schema.Column{AvailabilityRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityrule_therapist_id_day_of_week_is_active",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityRulesColumns[3], AvailabilityRulesColumns[5], AvailabilityRulesColumns[12]},
			},
			{
				Name:    "availabilityrule_center_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityRulesColumns[4]},
			},
		},
	}
	// CentersColumns holds the columns for the "centers" table.
	CentersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Riyadh"},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// CentersTable holds the schema information for the "centers" table.
	CentersTable = &schema.Table{
		Name:       "centers",
		Columns:    CentersColumns,
		PrimaryKey: []*schema.Column{CentersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "center_slug",
				Unique:  false,
				Columns: []*schema.Column{CentersColumns[5]},
			},
			{
				Name:    "center_is_active",
				Unique:  false,
				Columns: []*schema.Column{CentersColumns[8]},
			},
		},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "room_id", Type: field.TypeUUID, Nullable: true},
		{Name: "guardian_phone_enc", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "session_count", Type: field.TypeInt},
		{Name: "sessions_per_week", Type: field.TypeInt},
		{Name: "session_duration_min", Type: field.TypeInt, Default: 45},
		{Name: "preferred_days", Type: field.TypeJSON, Nullable: true},
		{Name: "avoid_days", Type: field.TypeJSON, Nullable: true},
		{Name: "preferred_windows", Type: field.TypeJSON, Nullable: true},
		{Name: "avoid_windows", Type: field.TypeJSON, Nullable: true},
		{Name: "flexibility", Type: field.TypeFloat64, Default: 0.5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "frozen", "completed", "cancelled"}, Default: "active"},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrollment_center_id_status",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[3], EnrollmentsColumns[18]},
			},
			{
				Name:    "enrollment_therapist_id_status",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[5], EnrollmentsColumns[18]},
			},
			{
				Name:    "enrollment_student_id",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[4]},
			},
		},
	}
	// FreezeWindowsColumns holds the columns for the "freeze_windows" table.
	FreezeWindowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "enrollment_id", Type: field.TypeUUID},
		{Name: "starts_on", Type: field.TypeTime},
		{Name: "ends_on", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "applied", "cancelled"}, Default: "pending"},
		{Name: "batch_id", Type: field.TypeUUID, Nullable: true},
	}
	// FreezeWindowsTable holds the schema information for the "freeze_windows" table.
	FreezeWindowsTable = &schema.Table{
		Name:       "freeze_windows",
		Columns:    FreezeWindowsColumns,
		PrimaryKey: []*schema.Column{FreezeWindowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "freezewindow_enrollment_id_status",
				Unique:  false,
				Columns: []*schema.Column{FreezeWindowsColumns[4], FreezeWindowsColumns[8]},
			},
			{
				Name:    "freezewindow_center_id",
				Unique:  false,
				Columns: []*schema.Column{FreezeWindowsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "recipient_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[7]},
			},
			{
				Name:    "notification_center_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[1]},
			},
		},
	}
	// RescheduleBatchesColumns holds the columns for the "reschedule_batches" table.
	RescheduleBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID, Unique: true},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "enrollment_id", Type: field.TypeUUID},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"freeze", "regenerate", "manual"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "applied", "rolled_back", "failed"}, Default: "pending"},
		{Name: "previous_sessions", Type: field.TypeJSON, Nullable: true},
		{Name: "conflicts", Type: field.TypeJSON, Nullable: true},
		{Name: "blockers", Type: field.TypeJSON, Nullable: true},
		{Name: "sessions_rescheduled", Type: field.TypeInt, Default: 0},
		{Name: "optimization_score", Type: field.TypeFloat64, Default: 0},
		{Name: "execution_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "new_end_date", Type: field.TypeTime, Nullable: true},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "rolled_back_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// RescheduleBatchesTable holds the schema information for the "reschedule_batches" table.
	RescheduleBatchesTable = &schema.Table{
		Name:       "reschedule_batches",
		Columns:    RescheduleBatchesColumns,
		PrimaryKey: []*schema.Column{RescheduleBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reschedulebatch_request_id",
				Unique:  true,
				Columns: []*schema.Column{RescheduleBatchesColumns[3]},
			},
			{
				Name:    "reschedulebatch_enrollment_id_status",
				Unique:  false,
				Columns: []*schema.Column{RescheduleBatchesColumns[5], RescheduleBatchesColumns[7]},
			},
			{
				Name:    "reschedulebatch_center_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RescheduleBatchesColumns[4], RescheduleBatchesColumns[1]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "capacity", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "room_center_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{RoomsColumns[3], RoomsColumns[6]},
			},
		},
	}
	// TherapistsColumns holds the columns for the "therapists" table.
	TherapistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "max_weekly_sessions", Type: field.TypeInt, Default: 30},
		{Name: "is_accepting", Type: field.TypeBool, Default: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// TherapistsTable holds the schema information for the "therapists" table.
	TherapistsTable = &schema.Table{
		Name:       "therapists",
		Columns:    TherapistsColumns,
		PrimaryKey: []*schema.Column{TherapistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapist_center_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{TherapistsColumns[3], TherapistsColumns[9]},
			},
		},
	}
	// TherapySessionsColumns holds the columns for the "therapy_sessions" table.
	TherapySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "center_id", Type: field.TypeUUID},
		{Name: "enrollment_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "room_id", Type: field.TypeUUID, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "frozen", "conflict"}, Default: "scheduled"},
		{Name: "generated_by_batch_id", Type: field.TypeUUID, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// TherapySessionsTable holds the schema information for the "therapy_sessions" table.
	TherapySessionsTable = &schema.Table{
		Name:       "therapy_sessions",
		Columns:    TherapySessionsColumns,
		PrimaryKey: []*schema.Column{TherapySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapysession_therapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[5], TherapySessionsColumns[8]},
			},
			{
				Name:    "therapysession_room_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[7], TherapySessionsColumns[8]},
			},
			{
				Name:    "therapysession_student_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[6], TherapySessionsColumns[8]},
			},
			{
				Name:    "therapysession_enrollment_id_status",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[4], TherapySessionsColumns[10]},
			},
			{
				Name:    "therapysession_center_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[3], TherapySessionsColumns[10], TherapySessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilityRulesTable,
		CentersTable,
		EnrollmentsTable,
		FreezeWindowsTable,
		NotificationsTable,
		RescheduleBatchesTable,
		RoomsTable,
		TherapistsTable,
		TherapySessionsTable,
	}
)

func init() {
}
