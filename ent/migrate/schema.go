// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusinessProfilesColumns holds the columns for the "business_profiles" table.
	BusinessProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "required_app_version", Type: field.TypeString, Default: "1.0.0"},
		{Name: "company_name", Type: field.TypeString, Default: "Educational Platform"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusinessProfilesTable holds the schema information for the "business_profiles" table.
	BusinessProfilesTable = &schema.Table{
		Name:       "business_profiles",
		Columns:    BusinessProfilesColumns,
		PrimaryKey: []*schema.Column{BusinessProfilesColumns[0]},
	}
	// GrammarsColumns holds the columns for the "grammars" table.
	GrammarsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"fill", "build"}},
		{Name: "question_text", Type: field.TypeString, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_option", Type: field.TypeInt, Nullable: true},
		{Name: "sentence", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pack_id", Type: field.TypeUUID},
	}
	// GrammarsTable holds the schema information for the "grammars" table.
	GrammarsTable = &schema.Table{
		Name:       "grammars",
		Columns:    GrammarsColumns,
		PrimaryKey: []*schema.Column{GrammarsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grammars_packs_grammars",
				Columns:    []*schema.Column{GrammarsColumns[8]},
				RefColumns: []*schema.Column{PacksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// GrammarTopicsColumns holds the columns for the "grammar_topics" table.
	GrammarTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "markdown_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pack_id", Type: field.TypeUUID},
	}
	// GrammarTopicsTable holds the schema information for the "grammar_topics" table.
	GrammarTopicsTable = &schema.Table{
		Name:       "grammar_topics",
		Columns:    GrammarTopicsColumns,
		PrimaryKey: []*schema.Column{GrammarTopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grammar_topics_packs_grammar_topics",
				Columns:    []*schema.Column{GrammarTopicsColumns[5]},
				RefColumns: []*schema.Column{PacksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "module_id", Type: field.TypeUUID},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_modules_lessons",
				Columns:    []*schema.Column{LessonsColumns[5]},
				RefColumns: []*schema.Column{ModulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ModulesColumns holds the columns for the "modules" table.
	ModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModulesTable holds the schema information for the "modules" table.
	ModulesTable = &schema.Table{
		Name:       "modules",
		Columns:    ModulesColumns,
		PrimaryKey: []*schema.Column{ModulesColumns[0]},
	}
	// PacksColumns holds the columns for the "packs" table.
	PacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"word", "grammar"}},
		{Name: "word_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeUUID},
	}
	// PacksTable holds the schema information for the "packs" table.
	PacksTable = &schema.Table{
		Name:       "packs",
		Columns:    PacksColumns,
		PrimaryKey: []*schema.Column{PacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "packs_lessons_packs",
				Columns:    []*schema.Column{PacksColumns[6]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "best_score", Type: field.TypeInt},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pack_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progresses_packs_progresses",
				Columns:    []*schema.Column{ProgressesColumns[5]},
				RefColumns: []*schema.Column{PacksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "progresses_users_progresses",
				Columns:    []*schema.Column{ProgressesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id_pack_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[6], ProgressesColumns[5]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Default: "UZS"},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by_admin_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TranslationsColumns holds the columns for the "translations" table.
	TranslationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "input_text", Type: field.TypeString, Size: 2147483647},
		{Name: "target_language", Type: field.TypeString},
		{Name: "output_text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TranslationsTable holds the schema information for the "translations" table.
	TranslationsTable = &schema.Table{
		Name:       "translations",
		Columns:    TranslationsColumns,
		PrimaryKey: []*schema.Column{TranslationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "translation_input_text_target_language",
				Unique:  true,
				Columns: []*schema.Column{TranslationsColumns[1], TranslationsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "telegram_id", Type: field.TypeInt64, Unique: true},
		{Name: "phone_number", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "uz_text", Type: field.TypeString, Nullable: true},
		{Name: "ru_text", Type: field.TypeString, Nullable: true},
		{Name: "audio_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pack_id", Type: field.TypeUUID},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "words_packs_words",
				Columns:    []*schema.Column{WordsColumns[6]},
				RefColumns: []*schema.Column{PacksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusinessProfilesTable,
		GrammarsTable,
		GrammarTopicsTable,
		LessonsTable,
		ModulesTable,
		PacksTable,
		ProgressesTable,
		SubscriptionsTable,
		TranslationsTable,
		UsersTable,
		WordsTable,
	}
)

func init() {
	GrammarsTable.ForeignKeys[0].RefTable = PacksTable
	GrammarTopicsTable.ForeignKeys[0].RefTable = PacksTable
	LessonsTable.ForeignKeys[0].RefTable = ModulesTable
	PacksTable.ForeignKeys[0].RefTable = LessonsTable
	ProgressesTable.ForeignKeys[0].RefTable = PacksTable
	ProgressesTable.ForeignKeys[1].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	WordsTable.ForeignKeys[0].RefTable = PacksTable
}
