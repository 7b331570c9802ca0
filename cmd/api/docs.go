package main

// @title           Filial Service API
// @version         1.0
// @description     API para gestão de filiais e vínculo de usuários operadores

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1
