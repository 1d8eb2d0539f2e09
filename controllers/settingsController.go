package controllers

import (
	"net/http"
	"sync"

	"tableswift/database"
	"tableswift/models"

	"github.com/gin-gonic/gin"
)

const defaultRestaurantName = "TableSwift"

// Settings mirror the menu state: kept in memory, written through to storage
// on every confirmed change.
var (
	settingsMu     sync.RWMutex
	restaurantName = defaultRestaurantName
	telegramConfig models.TelegramConfig
)

func LoadSettingsState() {
	name := defaultRestaurantName
	var storedName string
	if database.LoadStorage(database.StorageKeyRestaurantName, &storedName) && storedName != "" {
		name = storedName
	}

	var storedTelegram models.TelegramConfig
	database.LoadStorage(database.StorageKeyTelegram, &storedTelegram)

	settingsMu.Lock()
	restaurantName = name
	telegramConfig = storedTelegram
	settingsMu.Unlock()
}

// CurrentTelegramConfig is read by the order flow when dispatching
// notifications.
func CurrentTelegramConfig() models.TelegramConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return telegramConfig
}

// GetRestaurantInfo is the public branding endpoint for the customer menu.
func GetRestaurantInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		settingsMu.RLock()
		defer settingsMu.RUnlock()
		c.JSON(http.StatusOK, gin.H{"restaurant_name": restaurantName})
	}
}

// GetSettings returns the full admin settings, credentials included.
func GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		settingsMu.RLock()
		defer settingsMu.RUnlock()
		c.JSON(http.StatusOK, models.Settings{
			Restaurant_name: restaurantName,
			Telegram:        telegramConfig,
		})
	}
}

func UpdateSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.Settings
		if err := c.BindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&settings); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		settingsMu.Lock()
		restaurantName = settings.Restaurant_name
		telegramConfig = settings.Telegram
		settingsMu.Unlock()

		database.SaveStorage(database.StorageKeyRestaurantName, settings.Restaurant_name)
		database.SaveStorage(database.StorageKeyTelegram, settings.Telegram)

		c.JSON(http.StatusOK, settings)
	}
}
