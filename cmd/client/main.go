// cmd/client/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	authv1 "github.com/nestlist/nestlist/api/proto/auth/v1/generated"
	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
)

func main() {
	fmt.Println("🚀 NestList Test Client")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	authClient := authv1.NewAuthServiceClient(conn)
	listClient := todov1.NewListServiceClient(conn)
	taskClient := todov1.NewTaskServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Test 1: Register or login
	fmt.Println("\n📝 TEST 1: Register/Login")

	email := "john.doe@example.com"
	password := "SecurePass123"

	var accessToken string
	registerResp, err := authClient.Register(ctx, &authv1.RegisterRequest{
		Email:    email,
		Username: "johndoe",
		Password: password,
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			log.Fatalf("Registration failed: %v", err)
		}
		fmt.Println("  ℹ️  User already exists, logging in...")
		loginResp, err := authClient.Login(ctx, &authv1.LoginRequest{
			Email:    email,
			Password: password,
		})
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		accessToken = loginResp.AccessToken
		fmt.Printf("  ✅ Logged in as %s\n", loginResp.User.Username)
	} else {
		accessToken = registerResp.AccessToken
		fmt.Printf("  ✅ Registered %s (ID: %s)\n", registerResp.User.Username, registerResp.User.Id)
	}

	authCtx := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+accessToken)

	// Test 2: Create a list with a nested task tree
	fmt.Println("\n📋 TEST 2: Create List and Task Tree")

	listResp, err := listClient.CreateList(authCtx, &todov1.CreateListRequest{
		Name:        "Apartment move",
		Description: "Everything for the move in October",
	})
	if err != nil {
		log.Fatalf("Failed to create list: %v", err)
	}
	listID := listResp.List.Id
	fmt.Printf("  ✅ Created list %q (ID: %s)\n", listResp.List.Name, listID)

	taskResp, err := taskClient.CreateTask(authCtx, &todov1.CreateTaskRequest{
		ListId:      listID,
		Description: "Pack the kitchen",
	})
	if err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}
	rootID := taskResp.Task.Id
	fmt.Printf("  ✅ Created task %q (depth %d)\n", taskResp.Task.Description, taskResp.Task.Depth)

	subtaskDescriptions := []string{"Wrap the glasses", "Box the pans", "Empty the fridge"}
	var firstSubtaskID string
	for _, description := range subtaskDescriptions {
		subResp, err := taskClient.CreateSubtask(authCtx, &todov1.CreateSubtaskRequest{
			ParentTaskId: rootID,
			Description:  description,
		})
		if err != nil {
			log.Fatalf("Failed to create subtask: %v", err)
		}
		if firstSubtaskID == "" {
			firstSubtaskID = subResp.Task.Id
		}
		fmt.Printf("  ✅ Created subtask %q (depth %d)\n", subResp.Task.Description, subResp.Task.Depth)
	}

	// Nest one level deeper
	nestedResp, err := taskClient.CreateSubtask(authCtx, &todov1.CreateSubtaskRequest{
		ParentTaskId: firstSubtaskID,
		Description:  "Buy bubble wrap",
	})
	if err != nil {
		log.Fatalf("Failed to create nested subtask: %v", err)
	}
	fmt.Printf("  ✅ Created nested subtask %q (depth %d)\n", nestedResp.Task.Description, nestedResp.Task.Depth)

	// Test 3: Cascade completion down the tree
	fmt.Println("\n✅ TEST 3: Cascade Completion")

	completed := true
	updateResp, err := taskClient.UpdateTask(authCtx, &todov1.UpdateTaskRequest{
		Id:        rootID,
		Completed: &completed,
		Cascade:   true,
	})
	if err != nil {
		log.Fatalf("Failed to complete task: %v", err)
	}
	fmt.Printf("  ✅ Completed %q and its %d subtasks\n", updateResp.Task.Description, len(updateResp.Task.Subtasks))

	// Reopening a leaf must ripple back up
	reopened := false
	_, err = taskClient.UpdateTask(authCtx, &todov1.UpdateTaskRequest{
		Id:        nestedResp.Task.Id,
		Completed: &reopened,
	})
	if err != nil {
		log.Fatalf("Failed to reopen subtask: %v", err)
	}

	rootAfter, err := taskClient.GetTask(authCtx, &todov1.GetTaskRequest{Id: rootID})
	if err != nil {
		log.Fatalf("Failed to get task: %v", err)
	}
	fmt.Printf("  ✅ Reopened a leaf; root completed is now %v\n", rootAfter.Task.Completed)

	// Test 4: List stats
	fmt.Println("\n📊 TEST 4: List Stats")

	statsResp, err := listClient.GetListStats(authCtx, &todov1.GetListStatsRequest{Id: listID})
	if err != nil {
		log.Fatalf("Failed to get stats: %v", err)
	}
	fmt.Printf("  ✅ %d tasks total, %d completed, %d top-level\n",
		statsResp.TotalTasks, statsResp.CompletedTasks, statsResp.TopLevelTasks)

	// Test 5: Move the tree to another list
	fmt.Println("\n📦 TEST 5: Move Task Between Lists")

	otherListResp, err := listClient.CreateList(authCtx, &todov1.CreateListRequest{
		Name: "Done piles",
	})
	if err != nil {
		log.Fatalf("Failed to create second list: %v", err)
	}

	moveResp, err := taskClient.UpdateTask(authCtx, &todov1.UpdateTaskRequest{
		Id:     rootID,
		ListId: &otherListResp.List.Id,
	})
	if err != nil {
		log.Fatalf("Failed to move task: %v", err)
	}
	fmt.Printf("  ✅ Moved %q to %q\n", moveResp.Task.Description, otherListResp.List.Name)

	// Moving a subtask must be rejected
	_, err = taskClient.UpdateTask(authCtx, &todov1.UpdateTaskRequest{
		Id:     firstSubtaskID,
		ListId: &listID,
	})
	if status.Code(err) == codes.FailedPrecondition {
		fmt.Printf("  ✅ Expected rejection moving a subtask: %v\n", err)
	} else {
		fmt.Printf("  ❌ WARNING: subtask move was not rejected (err: %v)\n", err)
	}

	// Test 6: Delete the subtree
	fmt.Println("\n🗑️ TEST 6: Delete Task Subtree")

	if _, err := taskClient.DeleteTask(authCtx, &todov1.DeleteTaskRequest{Id: rootID}); err != nil {
		log.Fatalf("Failed to delete task: %v", err)
	}

	_, err = taskClient.GetTask(authCtx, &todov1.GetTaskRequest{Id: firstSubtaskID})
	if status.Code(err) == codes.NotFound {
		fmt.Println("  ✅ Subtasks deleted together with their root")
	} else {
		fmt.Printf("  ❌ WARNING: subtask survived deletion (err: %v)\n", err)
	}

	fmt.Println("\n✨ Test suite completed!")
}
