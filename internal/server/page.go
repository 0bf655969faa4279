package server

// chatPage is the embedded chat UI: a dark gym theme with neon accents.
const chatPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Workout AI Coach</title>
<style>
html, body {
    margin: 0;
    background-color: #0E0E10;
    color: #EAEAEA;
    font-family: 'Inter', sans-serif;
}
main {
    max-width: 860px;
    margin: 0 auto;
    padding: 24px;
}
h1 {
    color: #FF6A00;
    font-weight: 800;
}
.tagline { color: #BBBBBB; }
#chatbox {
    border-radius: 18px;
    padding: 22px;
    background: rgba(26,26,29,0.9);
    max-height: 65vh;
    overflow-y: auto;
    box-shadow: 0 0 40px rgba(255,106,0,0.2);
    border: 1px solid rgba(255,255,255,0.05);
}
.msg-user {
    margin-left: auto;
    margin-bottom: 14px;
    padding: 14px 18px;
    border-radius: 16px;
    background: #2A2A2E;
    max-width: 75%;
    width: fit-content;
}
.msg-assistant {
    margin-right: auto;
    margin-bottom: 14px;
    padding: 16px 20px;
    border-radius: 16px;
    background: linear-gradient(135deg,#FF6A00,#FF3C00);
    max-width: 75%;
    width: fit-content;
    box-shadow: 0 0 20px rgba(255,106,0,0.35);
}
form { display: flex; gap: 10px; margin-top: 16px; }
textarea {
    flex: 1;
    background: #1A1A1D;
    color: #EAEAEA;
    border-radius: 14px;
    border: 1px solid rgba(255,255,255,0.08);
    padding: 12px;
    min-height: 60px;
    resize: vertical;
}
button {
    background: linear-gradient(135deg,#FF6A00,#FF3C00);
    color: white;
    border-radius: 14px;
    border: none;
    font-weight: 600;
    padding: 0 24px;
    cursor: pointer;
}
.meta { font-size: 12px; opacity: 0.6; margin-top: 10px; }
</style>
</head>
<body>
<main>
<h1>&#127947; AI Workout Coach</h1>
<p class="tagline">Train smarter. Build consistency. Stay strong.</p>
<div id="chatbox"></div>
<form id="chat-form">
<textarea id="message" placeholder="E.g. Build muscle, 4 days/week..."></textarea>
<button type="submit">Send &#128170;</button>
</form>
<p class="meta"><span id="stats"></span> &middot; <a href="#" id="reset" style="color:#FF6A00;">Reset session</a></p>
</main>
<script>
const box = document.getElementById('chatbox');

function addMessage(role, html) {
    const div = document.createElement('div');
    div.className = role === 'human' ? 'msg-user' : 'msg-assistant';
    div.innerHTML = html;
    box.appendChild(div);
    box.scrollTop = box.scrollHeight;
}

function escapeHTML(s) {
    const d = document.createElement('div');
    d.textContent = s;
    return d.innerHTML;
}

async function refreshStats() {
    const res = await fetch('/api/stats');
    const stats = await res.json();
    document.getElementById('stats').textContent =
        (stats.total_requests || 0) + ' requests this session';
}

async function loadHistory() {
    const res = await fetch('/api/history');
    const entries = await res.json();
    box.innerHTML = '';
    for (const e of entries) {
        addMessage(e.role, e.html || escapeHTML(e.text));
    }
    refreshStats();
}

document.getElementById('chat-form').addEventListener('submit', async (ev) => {
    ev.preventDefault();
    const input = document.getElementById('message');
    const message = input.value.trim();
    if (!message) return;
    input.value = '';
    addMessage('human', escapeHTML(message));
    addMessage('assistant', 'Thinking...');
    const res = await fetch('/api/chat', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({message})
    });
    const data = await res.json();
    box.lastChild.innerHTML = data.html || escapeHTML(data.reply);
    refreshStats();
});

document.getElementById('reset').addEventListener('click', async (ev) => {
    ev.preventDefault();
    await fetch('/api/reset', {method: 'POST'});
    loadHistory();
});

loadHistory();
</script>
</body>
</html>`
