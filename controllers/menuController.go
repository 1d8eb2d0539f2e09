package controllers

import (
	"net/http"
	"sync"

	"tableswift/database"
	"tableswift/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// Menu and categories are held in memory and written back to storage after
// every confirmed mutation. Reads never touch the database.
var (
	menuMu     sync.RWMutex
	menuItems  []models.MenuItem
	categories []models.Category
)

// LoadMenuState pulls the menu and categories from storage, falling back to
// the seed data on first run or when a stored document is unreadable.
func LoadMenuState() {
	items := models.InitialMenuItems
	var storedItems []models.MenuItem
	if database.LoadStorage(database.StorageKeyMenu, &storedItems) {
		items = storedItems
	}

	cats := models.InitialCategories
	var storedCats []models.Category
	if database.LoadStorage(database.StorageKeyCategories, &storedCats) {
		cats = storedCats
	}

	menuMu.Lock()
	menuItems = items
	categories = cats
	menuMu.Unlock()
}

func findMenuItem(menuItemId string) (models.MenuItem, bool) {
	menuMu.RLock()
	defer menuMu.RUnlock()
	for _, item := range menuItems {
		if item.Menu_item_id == menuItemId {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		menuMu.RLock()
		defer menuMu.RUnlock()

		categoryId := c.Query("category_id")
		if categoryId == "" {
			c.JSON(http.StatusOK, menuItems)
			return
		}
		filtered := []models.MenuItem{}
		for _, item := range menuItems {
			if item.Category_id == categoryId {
				filtered = append(filtered, item)
			}
		}
		c.JSON(http.StatusOK, filtered)
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := findMenuItem(c.Param("menu_item_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.Menu_item_id = primitive.NewObjectID().Hex()
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		menuMu.Lock()
		defer menuMu.Unlock()
		if !categoryExists(item.Category_id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist"})
			return
		}
		menuItems = append(menuItems, item)
		database.SaveStorage(database.StorageKeyMenu, menuItems)
		c.JSON(http.StatusCreated, item)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.Menu_item_id = c.Param("menu_item_id")
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		menuMu.Lock()
		defer menuMu.Unlock()
		if !categoryExists(item.Category_id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist"})
			return
		}
		for i := range menuItems {
			if menuItems[i].Menu_item_id == item.Menu_item_id {
				menuItems[i] = item
				database.SaveStorage(database.StorageKeyMenu, menuItems)
				c.JSON(http.StatusOK, item)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		menuItemId := c.Param("menu_item_id")

		menuMu.Lock()
		defer menuMu.Unlock()
		for i := range menuItems {
			if menuItems[i].Menu_item_id == menuItemId {
				menuItems = append(menuItems[:i], menuItems[i+1:]...)
				database.SaveStorage(database.StorageKeyMenu, menuItems)
				c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
	}
}

func categoryExists(categoryId string) bool {
	for _, cat := range categories {
		if cat.Category_id == categoryId {
			return true
		}
	}
	return false
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		menuMu.RLock()
		defer menuMu.RUnlock()
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&category); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		category.Category_id = models.CategorySlug(category.Name)
		if category.Icon == "" {
			category.Icon = "Utensils"
		}

		menuMu.Lock()
		defer menuMu.Unlock()
		if categoryExists(category.Category_id) {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}
		categories = append(categories, category)
		database.SaveStorage(database.StorageKeyCategories, categories)
		c.JSON(http.StatusCreated, category)
	}
}

// DeleteCategory refuses to remove a category while any menu item still
// references it.
func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId := c.Param("category_id")

		menuMu.Lock()
		defer menuMu.Unlock()
		for _, item := range menuItems {
			if item.Category_id == categoryId {
				c.JSON(http.StatusConflict, gin.H{"error": "category has menu items assigned, reassign them first"})
				return
			}
		}
		for i := range categories {
			if categories[i].Category_id == categoryId {
				categories = append(categories[:i], categories[i+1:]...)
				database.SaveStorage(database.StorageKeyCategories, categories)
				c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	}
}
