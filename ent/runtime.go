// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/businessprofile"
	"github.com/lingvoapp/lingvo-api/ent/grammar"
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/lesson"
	"github.com/lingvoapp/lingvo-api/ent/module"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/progress"
	"github.com/lingvoapp/lingvo-api/ent/schema"
	"github.com/lingvoapp/lingvo-api/ent/subscription"
	"github.com/lingvoapp/lingvo-api/ent/translation"
	"github.com/lingvoapp/lingvo-api/ent/user"
	"github.com/lingvoapp/lingvo-api/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	businessprofileFields := schema.BusinessProfile{}.Fields()
	_ = businessprofileFields
	// businessprofileDescRequiredAppVersion is the schema descriptor for required_app_version field.
	businessprofileDescRequiredAppVersion := businessprofileFields[1].Descriptor()
	// businessprofile.DefaultRequiredAppVersion holds the default value on creation for the required_app_version field.
	businessprofile.DefaultRequiredAppVersion = businessprofileDescRequiredAppVersion.Default.(string)
	// businessprofileDescCompanyName is the schema descriptor for company_name field.
	businessprofileDescCompanyName := businessprofileFields[2].Descriptor()
	// businessprofile.DefaultCompanyName holds the default value on creation for the company_name field.
	businessprofile.DefaultCompanyName = businessprofileDescCompanyName.Default.(string)
	// businessprofileDescUpdatedAt is the schema descriptor for updated_at field.
	businessprofileDescUpdatedAt := businessprofileFields[3].Descriptor()
	// businessprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businessprofile.DefaultUpdatedAt = businessprofileDescUpdatedAt.Default.(func() time.Time)
	// businessprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businessprofile.UpdateDefaultUpdatedAt = businessprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessprofileDescID is the schema descriptor for id field.
	businessprofileDescID := businessprofileFields[0].Descriptor()
	// businessprofile.DefaultID holds the default value on creation for the id field.
	businessprofile.DefaultID = businessprofileDescID.Default.(func() uuid.UUID)
	grammarFields := schema.Grammar{}.Fields()
	_ = grammarFields
	// grammarDescCreatedAt is the schema descriptor for created_at field.
	grammarDescCreatedAt := grammarFields[7].Descriptor()
	// grammar.DefaultCreatedAt holds the default value on creation for the created_at field.
	grammar.DefaultCreatedAt = grammarDescCreatedAt.Default.(func() time.Time)
	// grammarDescUpdatedAt is the schema descriptor for updated_at field.
	grammarDescUpdatedAt := grammarFields[8].Descriptor()
	// grammar.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	grammar.DefaultUpdatedAt = grammarDescUpdatedAt.Default.(func() time.Time)
	// grammar.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	grammar.UpdateDefaultUpdatedAt = grammarDescUpdatedAt.UpdateDefault.(func() time.Time)
	// grammarDescID is the schema descriptor for id field.
	grammarDescID := grammarFields[0].Descriptor()
	// grammar.DefaultID holds the default value on creation for the id field.
	grammar.DefaultID = grammarDescID.Default.(func() uuid.UUID)
	grammartopicFields := schema.GrammarTopic{}.Fields()
	_ = grammartopicFields
	// grammartopicDescCreatedAt is the schema descriptor for created_at field.
	grammartopicDescCreatedAt := grammartopicFields[4].Descriptor()
	// grammartopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	grammartopic.DefaultCreatedAt = grammartopicDescCreatedAt.Default.(func() time.Time)
	// grammartopicDescUpdatedAt is the schema descriptor for updated_at field.
	grammartopicDescUpdatedAt := grammartopicFields[5].Descriptor()
	// grammartopic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	grammartopic.DefaultUpdatedAt = grammartopicDescUpdatedAt.Default.(func() time.Time)
	// grammartopic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	grammartopic.UpdateDefaultUpdatedAt = grammartopicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// grammartopicDescID is the schema descriptor for id field.
	grammartopicDescID := grammartopicFields[0].Descriptor()
	// grammartopic.DefaultID holds the default value on creation for the id field.
	grammartopic.DefaultID = grammartopicDescID.Default.(func() uuid.UUID)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[1].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[4].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[5].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	moduleFields := schema.Module{}.Fields()
	_ = moduleFields
	// moduleDescTitle is the schema descriptor for title field.
	moduleDescTitle := moduleFields[1].Descriptor()
	// module.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	module.TitleValidator = moduleDescTitle.Validators[0].(func(string) error)
	// moduleDescCreatedAt is the schema descriptor for created_at field.
	moduleDescCreatedAt := moduleFields[2].Descriptor()
	// module.DefaultCreatedAt holds the default value on creation for the created_at field.
	module.DefaultCreatedAt = moduleDescCreatedAt.Default.(func() time.Time)
	// moduleDescUpdatedAt is the schema descriptor for updated_at field.
	moduleDescUpdatedAt := moduleFields[3].Descriptor()
	// module.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	module.DefaultUpdatedAt = moduleDescUpdatedAt.Default.(func() time.Time)
	// module.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	module.UpdateDefaultUpdatedAt = moduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// moduleDescID is the schema descriptor for id field.
	moduleDescID := moduleFields[0].Descriptor()
	// module.DefaultID holds the default value on creation for the id field.
	module.DefaultID = moduleDescID.Default.(func() uuid.UUID)
	packFields := schema.Pack{}.Fields()
	_ = packFields
	// packDescTitle is the schema descriptor for title field.
	packDescTitle := packFields[1].Descriptor()
	// pack.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	pack.TitleValidator = packDescTitle.Validators[0].(func(string) error)
	// packDescCreatedAt is the schema descriptor for created_at field.
	packDescCreatedAt := packFields[5].Descriptor()
	// pack.DefaultCreatedAt holds the default value on creation for the created_at field.
	pack.DefaultCreatedAt = packDescCreatedAt.Default.(func() time.Time)
	// packDescUpdatedAt is the schema descriptor for updated_at field.
	packDescUpdatedAt := packFields[6].Descriptor()
	// pack.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pack.DefaultUpdatedAt = packDescUpdatedAt.Default.(func() time.Time)
	// pack.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pack.UpdateDefaultUpdatedAt = packDescUpdatedAt.UpdateDefault.(func() time.Time)
	// packDescID is the schema descriptor for id field.
	packDescID := packFields[0].Descriptor()
	// pack.DefaultID holds the default value on creation for the id field.
	pack.DefaultID = packDescID.Default.(func() uuid.UUID)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescTotalPoints is the schema descriptor for total_points field.
	progressDescTotalPoints := progressFields[4].Descriptor()
	// progress.DefaultTotalPoints holds the default value on creation for the total_points field.
	progress.DefaultTotalPoints = progressDescTotalPoints.Default.(int)
	// progressDescCreatedAt is the schema descriptor for created_at field.
	progressDescCreatedAt := progressFields[5].Descriptor()
	// progress.DefaultCreatedAt holds the default value on creation for the created_at field.
	progress.DefaultCreatedAt = progressDescCreatedAt.Default.(func() time.Time)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[6].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// progressDescID is the schema descriptor for id field.
	progressDescID := progressFields[0].Descriptor()
	// progress.DefaultID holds the default value on creation for the id field.
	progress.DefaultID = progressDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCurrency is the schema descriptor for currency field.
	subscriptionDescCurrency := subscriptionFields[5].Descriptor()
	// subscription.DefaultCurrency holds the default value on creation for the currency field.
	subscription.DefaultCurrency = subscriptionDescCurrency.Default.(string)
	// subscriptionDescIsActive is the schema descriptor for is_active field.
	subscriptionDescIsActive := subscriptionFields[7].Descriptor()
	// subscription.DefaultIsActive holds the default value on creation for the is_active field.
	subscription.DefaultIsActive = subscriptionDescIsActive.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[9].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	translationFields := schema.Translation{}.Fields()
	_ = translationFields
	// translationDescInputText is the schema descriptor for input_text field.
	translationDescInputText := translationFields[1].Descriptor()
	// translation.InputTextValidator is a validator for the "input_text" field. It is called by the builders before save.
	translation.InputTextValidator = translationDescInputText.Validators[0].(func(string) error)
	// translationDescTargetLanguage is the schema descriptor for target_language field.
	translationDescTargetLanguage := translationFields[2].Descriptor()
	// translation.TargetLanguageValidator is a validator for the "target_language" field. It is called by the builders before save.
	translation.TargetLanguageValidator = translationDescTargetLanguage.Validators[0].(func(string) error)
	// translationDescOutputText is the schema descriptor for output_text field.
	translationDescOutputText := translationFields[3].Descriptor()
	// translation.OutputTextValidator is a validator for the "output_text" field. It is called by the builders before save.
	translation.OutputTextValidator = translationDescOutputText.Validators[0].(func(string) error)
	// translationDescCreatedAt is the schema descriptor for created_at field.
	translationDescCreatedAt := translationFields[4].Descriptor()
	// translation.DefaultCreatedAt holds the default value on creation for the created_at field.
	translation.DefaultCreatedAt = translationDescCreatedAt.Default.(func() time.Time)
	// translationDescID is the schema descriptor for id field.
	translationDescID := translationFields[0].Descriptor()
	// translation.DefaultID holds the default value on creation for the id field.
	translation.DefaultID = translationDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPhoneNumber is the schema descriptor for phone_number field.
	userDescPhoneNumber := userFields[2].Descriptor()
	// user.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	user.PhoneNumberValidator = userDescPhoneNumber.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[3].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[6].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescCreatedAt is the schema descriptor for created_at field.
	wordDescCreatedAt := wordFields[5].Descriptor()
	// word.DefaultCreatedAt holds the default value on creation for the created_at field.
	word.DefaultCreatedAt = wordDescCreatedAt.Default.(func() time.Time)
	// wordDescUpdatedAt is the schema descriptor for updated_at field.
	wordDescUpdatedAt := wordFields[6].Descriptor()
	// word.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	word.DefaultUpdatedAt = wordDescUpdatedAt.Default.(func() time.Time)
	// word.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	word.UpdateDefaultUpdatedAt = wordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wordDescID is the schema descriptor for id field.
	wordDescID := wordFields[0].Descriptor()
	// word.DefaultID holds the default value on creation for the id field.
	word.DefaultID = wordDescID.Default.(func() uuid.UUID)
}
