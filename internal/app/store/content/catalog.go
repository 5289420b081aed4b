// internal/app/store/content/catalog.go
package contentstore

import (
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Typed constructors binding each content type to its collection.
// Collection names match the existing database.

func Hero(db *mongo.Database) *Singleton[models.HeroData, *models.HeroData] {
	return NewSingleton[models.HeroData, *models.HeroData](db, "hero_data")
}

func About(db *mongo.Database) *Singleton[models.AboutData, *models.AboutData] {
	return NewSingleton[models.AboutData, *models.AboutData](db, "about_data")
}

func Contact(db *mongo.Database) *Singleton[models.ContactData, *models.ContactData] {
	return NewSingleton[models.ContactData, *models.ContactData](db, "contact_data")
}

func Target(db *mongo.Database) *Singleton[models.TargetData, *models.TargetData] {
	return NewSingleton[models.TargetData, *models.TargetData](db, "target_data")
}

func Footer(db *mongo.Database) *Singleton[models.FooterData, *models.FooterData] {
	return NewSingleton[models.FooterData, *models.FooterData](db, "footer_data")
}

func Notifications(db *mongo.Database) *Singleton[models.NotificationSettings, *models.NotificationSettings] {
	return NewSingleton[models.NotificationSettings, *models.NotificationSettings](db, "notification_settings")
}

func Projects(db *mongo.Database) *Collection[models.Project, *models.Project] {
	return NewCollection[models.Project, *models.Project](db, "projects")
}

func Events(db *mongo.Database) *Collection[models.Event, *models.Event] {
	return NewCollection[models.Event, *models.Event](db, "events")
}

func Partners(db *mongo.Database) *Collection[models.Partner, *models.Partner] {
	return NewCollection[models.Partner, *models.Partner](db, "partners")
}

func Wards(db *mongo.Database) *Collection[models.Ward, *models.Ward] {
	return NewCollection[models.Ward, *models.Ward](db, "wards")
}
