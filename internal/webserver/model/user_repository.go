package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) FindByUuid(uuid string) (*User, error) {
	return u.find("uuid", uuid)
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", email)
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.find("username", username)
}

func (u *UserRepository) FindByID(id uint) (*User, error) {
	var user User

	result := u.DB.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		log.Printf("error creating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (u *UserRepository) Update(user *User) error {
	if result := u.DB.Save(user); result.Error != nil {
		log.Printf("error updating user: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// Delete removes the user together with their memberships and RSVPs, and
// detaches them from sessions they proposed. Users which still are the
// dungeon master of a campaign are protected and cannot be deleted.
func (u *UserRepository) Delete(uuid string) error {
	return u.DB.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.Where("uuid = ?", uuid).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var managed int64
		if err := tx.Model(&Campaign{}).Where("dungeon_master_id = ?", user.ID).Count(&managed).Error; err != nil {
			return err
		}
		if managed > 0 {
			return ErrOwnsCampaigns
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&CampaignPlayer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&SessionRSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&GameSession{}).Where("proposer_id = ?", user.ID).
			Update("proposer_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			log.Printf("error deleting user: %s\n", err)
			return err
		}
		return nil
	})
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return string(h.Sum(nil))
}

func (u *UserRepository) find(field, value string) (*User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
