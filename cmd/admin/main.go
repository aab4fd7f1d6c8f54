package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"facilityhub.dev/facility-service/pkg/db"
	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/models"
)

// admin CLI for account bootstrap: the first administrator cannot be created
// through the REST surface, which only registers plain occupant accounts.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	facilityCore := facility.Facility{
		Db: *db.GetInstance(db.UseSqliteDialector()),
	}
	facilityCore.WithServices(facility.ServiceOpts{
		User: facilityCore.GetIUser(),
	})

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin create-admin <email> <password> [display_name]")
			os.Exit(1)
		}
		displayName := "Administrator"
		if len(os.Args) > 4 {
			displayName = os.Args[4]
		}
		user, err := facilityCore.User.Register(os.Args[2], os.Args[3], displayName)
		if err != nil {
			log.Fatalf("Error creating account: %v", err)
		}
		if err := facilityCore.User.Promote(user.ID); err != nil {
			log.Fatalf("Error promoting account: %v", err)
		}
		fmt.Printf("Admin %s created (id=%s)\n", user.Email, user.ID)

	case "promote":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin promote <email>")
			os.Exit(1)
		}
		user := findUserByEmail(&facilityCore, os.Args[2])
		if err := facilityCore.User.Promote(user.ID); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s promoted to admin\n", user.Email)

	case "deactivate":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin deactivate <email>")
			os.Exit(1)
		}
		user := findUserByEmail(&facilityCore, os.Args[2])
		user.IsActive = false
		if err := facilityCore.Db.Conn.Save(user).Error; err != nil {
			log.Fatalf("Error deactivating user: %v", err)
		}
		fmt.Printf("User %s deactivated\n", user.Email)

	default:
		usage()
	}
}

func findUserByEmail(f *facility.Facility, email string) *models.User {
	var user models.User
	if err := f.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		log.Fatalf("User %s not found: %v", email, err)
	}
	return &user
}

func usage() {
	fmt.Println("Usage: admin <create-admin|promote|deactivate> [args]")
	os.Exit(1)
}
