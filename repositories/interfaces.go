package repositories

import "guestbook/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Exists(username string) (bool, error)
}

type MessageRepository interface {
	Create(message *models.Message) error
	Latest() ([]models.Message, error)
	Delete(id uint) error
}
