// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "specimen_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"created", "updated", "deleted", "growth_recorded"}},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_specimen_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// EnvironmentalConditionsColumns holds the columns for the "environmental_conditions" table.
	EnvironmentalConditionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "temperature", Type: field.TypeFloat64},
		{Name: "humidity", Type: field.TypeFloat64},
		{Name: "altitude", Type: field.TypeFloat64},
		{Name: "soil_ph", Type: field.TypeFloat64},
		{Name: "soil_type", Type: field.TypeEnum, Enums: []string{"clay", "sandy", "loamy", "silty", "peaty", "chalky", "saline"}},
		{Name: "soil_nutrients", Type: field.TypeJSON, Nullable: true},
	}
	// EnvironmentalConditionsTable holds the schema information for the "environmental_conditions" table.
	EnvironmentalConditionsTable = &schema.Table{
		Name:       "environmental_conditions",
		Columns:    EnvironmentalConditionsColumns,
		PrimaryKey: []*schema.Column{EnvironmentalConditionsColumns[0]},
	}
	// GrowthMetricsColumns holds the columns for the "growth_metrics" table.
	GrowthMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "height", Type: field.TypeFloat64, Nullable: true},
		{Name: "leaf_count", Type: field.TypeInt, Nullable: true},
		{Name: "stem_diameter", Type: field.TypeFloat64, Nullable: true},
		{Name: "health_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"excellent", "good", "fair", "poor", "critical"}},
		{Name: "measured_at", Type: field.TypeTime},
		{Name: "specimen_id", Type: field.TypeString},
	}
	// GrowthMetricsTable holds the schema information for the "growth_metrics" table.
	GrowthMetricsTable = &schema.Table{
		Name:       "growth_metrics",
		Columns:    GrowthMetricsColumns,
		PrimaryKey: []*schema.Column{GrowthMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "growth_metrics_specimen_growth_metrics",
				Columns:    []*schema.Column{GrowthMetricsColumns[7]},
				RefColumns: []*schema.Column{SpecimenColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "growthmetric_specimen_id",
				Unique:  false,
				Columns: []*schema.Column{GrowthMetricsColumns[7]},
			},
			{
				Name:    "growthmetric_measured_at",
				Unique:  false,
				Columns: []*schema.Column{GrowthMetricsColumns[6]},
			},
			{
				Name:    "growthmetric_health_status",
				Unique:  false,
				Columns: []*schema.Column{GrowthMetricsColumns[5]},
			},
		},
	}
	// LocationsColumns holds the columns for the "locations" table.
	LocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "region", Type: field.TypeString},
		{Name: "country", Type: field.TypeString},
		{Name: "site_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"forest", "grassland", "wetland", "desert", "agricultural", "urban", "coastal", "mountain"}},
	}
	// LocationsTable holds the schema information for the "locations" table.
	LocationsTable = &schema.Table{
		Name:       "locations",
		Columns:    LocationsColumns,
		PrimaryKey: []*schema.Column{LocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "location_region",
				Unique:  false,
				Columns: []*schema.Column{LocationsColumns[4]},
			},
			{
				Name:    "location_country",
				Unique:  false,
				Columns: []*schema.Column{LocationsColumns[5]},
			},
		},
	}
	// ResearchersColumns holds the columns for the "researchers" table.
	ResearchersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "affiliation", Type: field.TypeString, Nullable: true},
	}
	// ResearchersTable holds the schema information for the "researchers" table.
	ResearchersTable = &schema.Table{
		Name:       "researchers",
		Columns:    ResearchersColumns,
		PrimaryKey: []*schema.Column{ResearchersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researcher_name",
				Unique:  false,
				Columns: []*schema.Column{ResearchersColumns[2]},
			},
		},
	}
	// SpecimenColumns holds the columns for the "specimen" table.
	SpecimenColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "species", Type: field.TypeString},
		{Name: "common_name", Type: field.TypeString},
		{Name: "sampling_date", Type: field.TypeTime},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "deleted"}, Default: "active"},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "condition_id", Type: field.TypeString},
		{Name: "location_id", Type: field.TypeString},
	}
	// SpecimenTable holds the schema information for the "specimen" table.
	SpecimenTable = &schema.Table{
		Name:       "specimen",
		Columns:    SpecimenColumns,
		PrimaryKey: []*schema.Column{SpecimenColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "specimen_environmental_conditions_specimens",
				Columns:    []*schema.Column{SpecimenColumns[9]},
				RefColumns: []*schema.Column{EnvironmentalConditionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "specimen_locations_specimens",
				Columns:    []*schema.Column{SpecimenColumns[10]},
				RefColumns: []*schema.Column{LocationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "specimen_species",
				Unique:  false,
				Columns: []*schema.Column{SpecimenColumns[3]},
			},
			{
				Name:    "specimen_status",
				Unique:  false,
				Columns: []*schema.Column{SpecimenColumns[7]},
			},
			{
				Name:    "specimen_sampling_date",
				Unique:  false,
				Columns: []*schema.Column{SpecimenColumns[5]},
			},
			{
				Name:    "specimen_location_id",
				Unique:  false,
				Columns: []*schema.Column{SpecimenColumns[10]},
			},
			{
				Name:    "specimen_condition_id",
				Unique:  false,
				Columns: []*schema.Column{SpecimenColumns[9]},
			},
		},
	}
	// SpecimenResearchersColumns holds the columns for the "specimen_researchers" table.
	SpecimenResearchersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeEnum, Nullable: true, Enums: []string{"lead_researcher", "assistant_researcher", "field_technician", "data_analyst", "supervisor"}},
		{Name: "researcher_id", Type: field.TypeString},
		{Name: "specimen_id", Type: field.TypeString},
	}
	// SpecimenResearchersTable holds the schema information for the "specimen_researchers" table.
	SpecimenResearchersTable = &schema.Table{
		Name:       "specimen_researchers",
		Columns:    SpecimenResearchersColumns,
		PrimaryKey: []*schema.Column{SpecimenResearchersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "specimen_researchers_researchers_assignments",
				Columns:    []*schema.Column{SpecimenResearchersColumns[3]},
				RefColumns: []*schema.Column{ResearchersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "specimen_researchers_specimen_researcher_links",
				Columns:    []*schema.Column{SpecimenResearchersColumns[4]},
				RefColumns: []*schema.Column{SpecimenColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "specimenresearcher_specimen_id_researcher_id",
				Unique:  true,
				Columns: []*schema.Column{SpecimenResearchersColumns[4], SpecimenResearchersColumns[3]},
			},
			{
				Name:    "specimenresearcher_researcher_id",
				Unique:  false,
				Columns: []*schema.Column{SpecimenResearchersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		EnvironmentalConditionsTable,
		GrowthMetricsTable,
		LocationsTable,
		ResearchersTable,
		SpecimenTable,
		SpecimenResearchersTable,
	}
)

func init() {
	GrowthMetricsTable.ForeignKeys[0].RefTable = SpecimenTable
	SpecimenTable.ForeignKeys[0].RefTable = EnvironmentalConditionsTable
	SpecimenTable.ForeignKeys[1].RefTable = LocationsTable
	SpecimenResearchersTable.ForeignKeys[0].RefTable = ResearchersTable
	SpecimenResearchersTable.ForeignKeys[1].RefTable = SpecimenTable
}
